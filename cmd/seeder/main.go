package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/UnknownOlympus/hestia/internal/config"
	"github.com/UnknownOlympus/hestia/internal/metrics"
	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/UnknownOlympus/hestia/internal/repository"
	"github.com/jaswdr/faker"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tamathecxder/randomail"
)

var departments = []string{"Engineering", "Marketing", "Sales", "Finance", "Human Resources", "Support"}

// seeder fills the employees table with generated records for local and demo
// environments. Emails are randomized so repeated runs do not hit the unique
// constraint.
func main() {
	count := flag.Int("count", 10, "number of employees to insert")
	flag.Parse()

	cfg := config.MustLoad()

	dbpool, dbErr := repository.NewDatabase(
		cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.User, cfg.Postgres.Password,
		cfg.Postgres.Dbname, cfg.Postgres.PoolSize)
	if dbErr != nil {
		log.Fatalf("Failed to connect to DB: %v", dbErr)
	}
	defer dbpool.Close()

	repo := repository.NewEmployeeRepository(dbpool, metrics.NewMetrics(prometheus.NewRegistry()))
	fake := faker.New()

	minHireDate := time.Now().AddDate(-10, 0, 0)

	for i := range *count {
		phone := fake.Phone().Number()
		department := fake.RandomStringElement(departments)
		position := fake.Company().JobTitle()
		salary := fake.RandomFloat(2, 35000, 150000)
		hireDate := models.Date{Time: fake.Time().TimeBetween(minHireDate, time.Now())}

		draft := models.EmployeeDraft{
			FirstName:  fake.Person().FirstName(),
			LastName:   fake.Person().LastName(),
			Email:      randomail.GenerateRandomEmail(),
			Phone:      &phone,
			Department: &department,
			Position:   &position,
			Salary:     &salary,
			HireDate:   &hireDate,
		}

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Postgres.AcquireTimeout)
		employee, err := repo.CreateEmployee(ctx, draft)
		cancel()
		if err != nil {
			log.Fatalf("Failed to seed employee %d: %v", i+1, err)
		}

		log.Printf("Seeded employee #%d: %s %s <%s>", employee.ID, employee.FirstName, employee.LastName, employee.Email)
	}

	log.Printf("✅ Seeded %d employees", *count)
}

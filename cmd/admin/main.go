package main

import (
	"fmt"
	"log"
	"os"

	"helpdesk/backend/internal/account"
	"helpdesk/backend/internal/complaint"
	"helpdesk/backend/internal/models"
	"helpdesk/backend/internal/storage"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: no .env file loaded")
	}

	db, err := gorm.Open(postgres.Open(os.Getenv("DATABASE_URL")), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	storageSvc := storage.NewService(db, nil) // No redis needed for admin CLI

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <command> [args]")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "create-admin":
		if len(os.Args) != 5 {
			fmt.Println("Usage: admin create-admin <email> <password> <full_name>")
			os.Exit(1)
		}
		if err := createAdmin(storageSvc, os.Args[2], os.Args[3], os.Args[4]); err != nil {
			log.Fatalf("Error creating admin: %v", err)
		}
		fmt.Printf("Admin %s has been created.\n", os.Args[2])
	case "add-personnel":
		if len(os.Args) != 5 {
			fmt.Println("Usage: admin add-personnel <name> <contact> <role>")
			os.Exit(1)
		}
		p := &models.Personnel{Name: os.Args[2], Contact: os.Args[3], Role: os.Args[4], Available: true}
		if err := storageSvc.CreatePersonnel(p); err != nil {
			log.Fatalf("Error adding personnel: %v", err)
		}
		fmt.Printf("Personnel %s (%s) has been added.\n", p.Name, p.Role)
	case "seed-types":
		if err := storageSvc.SeedComplaintTypes(complaint.DefaultTypes); err != nil {
			log.Fatalf("Error seeding complaint types: %v", err)
		}
		fmt.Println("Complaint types seeded.")
	default:
		fmt.Println("Unknown command")
		os.Exit(1)
	}
}

func createAdmin(s storage.Storage, email, password, fullName string) error {
	email = account.NormalizeEmail(email)

	existing, err := s.GetUserByEmail(email)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if existing != nil {
		existing.PasswordHash = string(hash)
		existing.Role = models.RoleAdmin
		return s.UpdateUser(existing)
	}

	return s.CreateUser(&models.User{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     fullName,
		Role:         models.RoleAdmin,
		IsOnboarded:  true,
	})
}

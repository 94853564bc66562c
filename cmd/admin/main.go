package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"hrdesk/backend/internal/auth"
	"hrdesk/backend/internal/models"
	"hrdesk/backend/internal/storage"
)

// Operator CLI against the SQL backend: seed an HR manager account,
// toggle account activity, close out a complaint.

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is required for the admin CLI")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	storageSvc := storage.NewStorageService(db, nil) // No redis needed for admin CLI

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <command> [args]")
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "seed-hr":
		if len(os.Args) != 6 {
			fmt.Println("Usage: admin seed-hr <username> <phone> <email> <password>")
			os.Exit(1)
		}
		if err := seedHRManager(storageSvc, os.Args[2], os.Args[3], os.Args[4], os.Args[5]); err != nil {
			log.Fatalf("Error seeding HR manager: %v", err)
		}
		fmt.Printf("HR manager %s created.\n", os.Args[2])
	case "deactivate":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin deactivate <user_id>")
			os.Exit(1)
		}
		if err := setActive(storageSvc, os.Args[2], false); err != nil {
			log.Fatalf("Error deactivating user: %v", err)
		}
		fmt.Printf("User %s has been deactivated.\n", os.Args[2])
	case "reactivate":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin reactivate <user_id>")
			os.Exit(1)
		}
		if err := setActive(storageSvc, os.Args[2], true); err != nil {
			log.Fatalf("Error reactivating user: %v", err)
		}
		fmt.Printf("User %s has been reactivated.\n", os.Args[2])
	case "close-complaint":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin close-complaint <complaint_id>")
			os.Exit(1)
		}
		if err := closeComplaint(storageSvc, os.Args[2]); err != nil {
			log.Fatalf("Error closing complaint: %v", err)
		}
		fmt.Printf("Complaint %s has been resolved.\n", os.Args[2])
	default:
		fmt.Println("Unknown command")
		os.Exit(1)
	}
}

func seedHRManager(s storage.Storage, username, phone, email, password string) error {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	return s.CreateUser(&models.User{
		Username: username,
		Password: hash,
		Phone:    phone,
		Email:    email,
		Name:     username,
		Role:     models.RoleHRManager,
		IsActive: true,
	})
}

func setActive(s storage.Storage, userID string, active bool) error {
	_, err := s.UpdateUser(userID, models.UserPatch{IsActive: &active})
	return err
}

func closeComplaint(s storage.Storage, complaintID string) error {
	status := models.ComplaintStatusResolved
	_, err := s.UpdateComplaint(complaintID, models.ComplaintPatch{Status: &status})
	return err
}

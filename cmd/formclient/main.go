// Command formclient drives one contact submission through the form state
// machine against a running API instance, the way the website form does:
// seed the interest from an inquiry-type indicator, fill the fields, submit,
// and follow the outcome to a confirmation URL.
//
// Usage:
//
//	go run ./cmd/formclient -name "Asha" -email a@x.com -phone 123 -type student
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go-vedascholars-backend/internal/form"
)

func main() {
	var (
		apiURL      = flag.String("api", "http://localhost:8080", "base URL of the backend API")
		frontendURL = flag.String("frontend", "http://localhost:3000", "base URL for the confirmation redirect")
		name        = flag.String("name", "", "submitter name")
		email       = flag.String("email", "", "submitter email")
		phone       = flag.String("phone", "", "submitter phone")
		interest    = flag.String("interest", "", "interest category (overrides -type seeding)")
		inquiryType = flag.String("type", "", "inquiry type indicator (student, partner, recruiter)")
	)
	flag.Parse()

	f := form.New()
	f.SeedFromType(*inquiryType)
	f.SetField(form.FieldName, *name)
	f.SetField(form.FieldEmail, *email)
	f.SetField(form.FieldPhone, *phone)
	if *interest != "" {
		f.SetField(form.FieldInterest, *interest)
	}

	d := form.NewDispatcher(*apiURL+"/v1/contact", *frontendURL)
	fmt.Printf("submit control: %q\n", d.SubmitLabel())

	redirect, err := d.Submit(context.Background(), f.Submission())
	if err != nil {
		fmt.Fprintf(os.Stderr, "submission failed: %v\n", err)
		fmt.Fprintf(os.Stderr, "notice: %s\n", d.Notice())
		fmt.Fprintf(os.Stderr, "submit control: %q\n", d.SubmitLabel())
		os.Exit(1)
	}

	fmt.Printf("server: %s\n", d.Message())
	fmt.Printf("redirecting to: %s\n", redirect)
}

// Package seed holds the fixed reference dataset used to populate an empty
// store on first run. Accessors return fresh copies; the catalog itself never
// changes at runtime.
package seed

import (
	"dentalflow/internal/auth"
	"dentalflow/internal/model"
)

// Tiny but valid sample documents, kept inline the same way the incidents are
// persisted: base64 data URIs.
const (
	invoicePDF = "data:application/pdf;base64,JVBERi0xLjQKJdPr6eEKMSAwIG9iago8PAovVHlwZSAvQ2F0YWxvZwovUGFnZXMgMiAwIFIKPj4KZW5kb2JqCjIgMCBvYmoKPDwKL1R5cGUgL1BhZ2VzCi9LaWRzIFszIDAgUl0KL0NvdW50IDEKPD4KZW5kb2JqCjMgMCBvYmoKPDwKL1R5cGUgL1BhZ2UKL1BhcmVudCAyIDAgUgovUmVzb3VyY2VzIDw8Ci9Gb250IDw8Ci9GMSA0IDAgUgo+Pgo+PgovTWVkaWFCb3ggWzAgMCA2MTIgNzkyXQovQ29udGVudHMgNSAwIFIKPj4KZW5kb2JqCjQgMCBvYmoKPDwKL1R5cGUgL0ZvbnQKL1N1YnR5cGUgL1R5cGUxCi9CYXNlRm9udCAvSGVsdmV0aWNhCj4+CmVuZG9iago1IDAgb2JqCjw8Ci9MZW5ndGggNDQKPj4Kc3RyZWFtCkJUCi9GMSA2IFRmCjcyIDcwMCBUZAooSGVsbG8gV29ybGQhKSBUagpFVApzdHJlYW0KZW5kb2JqCnhyZWYKMCA2CjAwMDAwMDAwMDAgNjU1MzUgZgowMDAwMDAwMDA5IDAwMDAwIG4KMDAwMDAwMDA1OCAwMDAwMCBuCjAwMDAwMDAxMTUgMDAwMDAgbgowMDAwMDAwMjQ1IDAwMDAwIG4KMDAwMDAwMDMyNiAwMDAwMCBuCnRyYWlsZXIKPDwKL1NpemUgNgovUm9vdCAxIDAgUgo+PgpzdGFydHhyZWYKNDE5CiUlRU9G"
	mriPDF     = "data:application/pdf;base64,JVBERi0xLjQKJdPr6eEKMSAwIG9iago8PAovVHlwZSAvQ2F0YWxvZwovUGFnZXMgMiAwIFIKPj4KZW5kb2JqCjIgMCBvYmoKPDwKL1R5cGUgL1BhZ2VzCi9LaWRzIFszIDAgUl0KL0NvdW50IDEKPD4KZW5kb2JqCjMgMCBvYmoKPDwKL1R5cGUgL1BhZ2UKL1BhcmVudCAyIDAgUgovUmVzb3VyY2VzIDw8Ci9Gb250IDw8Ci9GMSA0IDAgUgo+Pgo+PgovTWVkaWFCb3ggWzAgMCA2MTIgNzkyXQovQ29udGVudHMgNSAwIFIKPj4KZW5kb2JqCjQgMCBvYmoKPDwKL1R5cGUgL0ZvbnQKL1N1YnR5cGUgL1R5cGUxCi9CYXNlRm9udCAvSGVsdmV0aWNhCj4+CmVuZG9iago1IDAgb2JqCjw8Ci9MZW5ndGggNDQKPj4Kc3RyZWFtCkJUCi9GMSA2IFRmCjcyIDcwMCBUZAooTVJJIFJlcG9ydCkgVGoKRVQKZW5kc3RyZWFtCmVuZG9iagp4cmVmCjAgNgowMDAwMDAwMDAwIDY1NTM1IGYKMDAwMDAwMDAwOSAwMDAwMCBuCjAwMDAwMDAwNTggMDAwMDAgbgowMDAwMDAwMTE1IDAwMDAwIG4KMDAwMDAwMDI0NSAwMDAwMCBuCjAwMDAwMDAzMjYgMDAwMDAgbgp0cmFpbGVyCjw8Ci9TaXplIDYKL1Jvb3QgMSAwIFIKPj4Kc3RhcnR4cmVmCjQyOQolJUVPRg=="
	pixelPNG   = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mP8/5+hHgAHggJ/PchI7wAAAABJRU5ErkJggg=="
	pixelJPEG  = "data:image/jpeg;base64,/9j/4AAQSkZJRgABAQEAYABgAAD/2wBDAAEBAQEBAQEBAQEBAQEBAQEBAQEBAQEBAQEBAQEBAQEBAQEBAQEBAQEBAQEBAQEBAQEBAQEBAQEBAQEBAQEBAQH/2wBDAQEBAQEBAQEBAQEBAQEBAQEBAQEBAQEBAQEBAQEBAQEBAQEBAQEBAQEBAQEBAQEBAQEBAQEBAQEBAQEBAQEBAQH/wAARCAABAAEDASIAAhEBAxEB/8QAFQABAQAAAAAAAAAAAAAAAAAAAAv/xAAUEAEAAAAAAAAAAAAAAAAAAAAA/8QAFQEBAQAAAAAAAAAAAAAAAAAAAAX/xAAUEQEAAAAAAAAAAAAAAAAAAAAA/9oADAMBAAIRAxEAPwA9IP/Z"
)

// Users returns the reference user list. Credential validation reads this
// catalog directly, so the digests here are the source of truth for logins.
func Users() []model.User {
	return []model.User{
		{
			ID:             "u1",
			Email:          "admin@dentalflow.com",
			Name:           "Admin User",
			IsAdmin:        true,
			HashedPassword: auth.HashPassword("admin123"),
		},
		{
			ID:             "u2",
			Email:          "john.doe@example.com",
			Name:           "John Doe",
			IsAdmin:        false,
			PatientID:      "p1",
			HashedPassword: auth.HashPassword("patient123"),
		},
		{
			ID:             "u3",
			Email:          "jane.smith@example.com",
			Name:           "Jane Smith",
			IsAdmin:        false,
			PatientID:      "p2",
			HashedPassword: auth.HashPassword("patient456"),
		},
	}
}

// Patients returns the reference patient list.
func Patients() []model.Patient {
	return []model.Patient{
		{ID: "p1", Name: "John Doe", DOB: "1990-05-10", Contact: "1234567890", HealthInfo: "No allergies"},
		{ID: "p2", Name: "Jane Smith", DOB: "1985-03-22", Contact: "9876543210", HealthInfo: "Diabetic"},
		{ID: "p3", Name: "Alice Johnson", DOB: "1978-11-09", Contact: "5551234567", HealthInfo: "Asthma"},
		{ID: "p4", Name: "Bob Williams", DOB: "2000-01-15", Contact: "4445556666", HealthInfo: "No known conditions"},
		{ID: "p5", Name: "Emily Davis", DOB: "1995-06-18", Contact: "2223334444", HealthInfo: "Peanut allergy"},
		{ID: "p6", Name: "Michael Brown", DOB: "1988-08-30", Contact: "7778889999", HealthInfo: "Hypertension"},
		{ID: "p7", Name: "Olivia Garcia", DOB: "1992-12-12", Contact: "6667778888", HealthInfo: "No allergies"},
		{ID: "p8", Name: "David Miller", DOB: "1975-04-05", Contact: "1112223333", HealthInfo: "Heart condition"},
		{ID: "p9", Name: "Sophia Wilson", DOB: "2001-09-27", Contact: "9998887777", HealthInfo: "No allergies"},
		{ID: "p10", Name: "Liam Martinez", DOB: "1998-07-02", Contact: "8889990000", HealthInfo: "Lactose intolerant"},
		{ID: "p11", Name: "Ava Anderson", DOB: "1983-02-14", Contact: "3334445555", HealthInfo: "Migraines"},
	}
}

// Incidents returns the reference incident list, attachments included.
func Incidents() []model.Incident {
	return []model.Incident{
		{
			ID: "i1", PatientID: "p1", Title: "Toothache",
			Description: "Upper molar pain", Comments: "Sensitive to cold",
			AppointmentDate: "2025-07-01T10:00:00", Cost: 80, Status: model.StatusCompleted,
			Files: []model.FileAttachment{
				{Name: "invoice.pdf", URL: invoicePDF, Type: "application/pdf"},
				{Name: "xray.png", URL: pixelPNG, Type: "image/png"},
			},
		},
		{
			ID: "i2", PatientID: "p3", Title: "Routine Checkup",
			Description: "Annual physical exam", Comments: "Vitals normal",
			AppointmentDate: "2025-06-28T09:30:00", Cost: 50, Status: model.StatusCompleted,
			Files: []model.FileAttachment{},
		},
		{
			ID: "i3", PatientID: "p4", Title: "Cavity Filling",
			Description: "Cavity in lower right molar", Comments: "Used composite material",
			AppointmentDate: "2025-06-25T14:00:00", Cost: 120, Status: model.StatusCompleted,
			Files: []model.FileAttachment{
				{Name: "before.jpg", URL: pixelJPEG, Type: "image/jpeg"},
			},
		},
		{
			ID: "i4", PatientID: "p6", Title: "Flu Symptoms",
			Description: "Fever, chills, and sore throat", Comments: "Prescribed Tamiflu",
			AppointmentDate: "2025-06-20T11:15:00", Cost: 60, Status: model.StatusCompleted,
			Files: []model.FileAttachment{},
		},
		{
			ID: "i5", PatientID: "p2", Title: "Skin Rash",
			Description: "Redness and itching on arm", Comments: "Allergy suspected",
			AppointmentDate: "2025-06-18T16:30:00", Cost: 40, Status: model.StatusCompleted,
			Files: []model.FileAttachment{
				{Name: "rash.jpg", URL: pixelJPEG, Type: "image/jpeg"},
			},
		},
		{
			ID: "i6", PatientID: "p5", Title: "Blood Test",
			Description: "Routine blood test", Comments: "Waiting for lab report",
			AppointmentDate: "2025-06-10T10:45:00", Cost: 100, Status: model.StatusPending,
			Files: []model.FileAttachment{},
		},
		{
			ID: "i7", PatientID: "p8", Title: "Back Pain",
			Description: "Lower back discomfort", Comments: "MRI advised",
			AppointmentDate: "2025-06-05T15:00:00", Cost: 150, Status: model.StatusInProgress,
			Files: []model.FileAttachment{
				{Name: "mri.pdf", URL: mriPDF, Type: "application/pdf"},
			},
		},
		{
			ID: "i8", PatientID: "p10", Title: "Tooth Cleaning",
			Description: "Dental plaque removal", Comments: "Suggested every 6 months",
			AppointmentDate: "2025-05-30T13:00:00", Cost: 70, Status: model.StatusCompleted,
			Files: []model.FileAttachment{},
		},
		{
			ID: "i9", PatientID: "p11", Title: "Migraine",
			Description: "Recurring headaches", Comments: "MRI scan scheduled",
			AppointmentDate: "2025-05-25T09:00:00", Cost: 90, Status: model.StatusScheduled,
			Files: []model.FileAttachment{},
		},
		{
			ID: "i10", PatientID: "p7", Title: "Sprained Ankle",
			Description: "Twisted during jogging", Comments: "Recommended rest + ice",
			AppointmentDate: "2025-05-20T17:45:00", Cost: 65, Status: model.StatusCompleted,
			Files: []model.FileAttachment{
				{Name: "xray-ankle.png", URL: pixelPNG, Type: "image/png"},
			},
		},
	}
}

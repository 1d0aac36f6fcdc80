// Package docs builds the OpenAPI documents served at /api-docs on each
// service. The documents are assembled from the route tables below rather
// than hand-written JSON blobs.
package docs

import (
	"strconv"
	"strings"
)

// Operation describes one documented route.
type Operation struct {
	Method  string
	Path    string
	Tag     string
	Summary string
	Status  int
}

// Document assembles a minimal OpenAPI 3 document for a service.
func Document(title, version string, operations []Operation) map[string]any {
	paths := map[string]any{}
	for _, op := range operations {
		entry, _ := paths[op.Path].(map[string]any)
		if entry == nil {
			entry = map[string]any{}
		}
		entry[strings.ToLower(op.Method)] = map[string]any{
			"tags":    []string{op.Tag},
			"summary": op.Summary,
			"responses": map[string]any{
				strconv.Itoa(op.Status): map[string]any{"description": op.Summary},
			},
		}
		paths[op.Path] = entry
	}

	return map[string]any{
		"openapi": "3.0.3",
		"info":    map[string]any{"title": title, "version": version},
		"paths":   paths,
	}
}

// Registry documents the employee registry service.
func Registry(version string) map[string]any {
	return Document("Employee Registry Service", version, []Operation{
		{Method: "POST", Path: "/employees", Tag: "Employee", Summary: "Create an employee", Status: 201},
		{Method: "GET", Path: "/employees", Tag: "Employee", Summary: "List employees", Status: 200},
		{Method: "GET", Path: "/employees/{id}", Tag: "Employee", Summary: "Fetch an employee", Status: 200},
		{Method: "PUT", Path: "/employees/{id}", Tag: "Employee", Summary: "Update an employee", Status: 200},
		{Method: "PUT", Path: "/employees/{id}/auth", Tag: "Employee", Summary: "Set the authenticated flag", Status: 200},
		{Method: "DELETE", Path: "/employees/{id}", Tag: "Employee", Summary: "Delete an employee", Status: 200},
		{Method: "GET", Path: "/beneficiaries/{id}", Tag: "Beneficiary", Summary: "Fetch a beneficiary", Status: 200},
		{Method: "DELETE", Path: "/beneficiaries/{id}", Tag: "Beneficiary", Summary: "Delete a beneficiary", Status: 200},
		{Method: "POST", Path: "/counselors", Tag: "Counselor", Summary: "Create an HR counselor", Status: 200},
	})
}

// HR documents the HR orchestration service.
func HR(version string) map[string]any {
	return Document("HR Orchestration Service", version, []Operation{
		{Method: "POST", Path: "/auth/verify", Tag: "Auth", Summary: "Verify an employee identity", Status: 200},
		{Method: "POST", Path: "/beneficiaries", Tag: "Beneficiary", Summary: "Create a beneficiary", Status: 201},
		{Method: "PUT", Path: "/beneficiaries/{id}", Tag: "Beneficiary", Summary: "Update a beneficiary", Status: 200},
		{Method: "POST", Path: "/companies", Tag: "Company", Summary: "Create an insurance company", Status: 201},
		{Method: "POST", Path: "/dossiers", Tag: "Dossier", Summary: "Create or update the employee dossier", Status: 201},
	})
}

// Association documents the dossier association service.
func Association(version string) map[string]any {
	return Document("Dossier Association Service", version, []Operation{
		{Method: "POST", Path: "/associate", Tag: "Association", Summary: "Upsert the employee-beneficiary dossier", Status: 200},
		{Method: "GET", Path: "/dossiers/{id}", Tag: "Association", Summary: "Fetch a dossier", Status: 200},
	})
}

// Notification documents the notification service.
func Notification(version string) map[string]any {
	return Document("Notification Service", version, []Operation{
		{Method: "POST", Path: "/beneficiary-change", Tag: "Notification", Summary: "Accept a beneficiary-change event", Status: 202},
	})
}


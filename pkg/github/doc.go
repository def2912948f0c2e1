// Package github implements the native admin layer of ghadmin: organization
// team, repository, and membership management on the GitHub REST API.
//
// The package includes:
// - APIClient interface over the GitHub operations ghadmin needs
// - Client implementation backed by google/go-github
// - Admin service mapping invocation requests to API operations
// - Structured error taxonomy with retry support for transient failures
package github

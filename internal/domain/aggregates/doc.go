// Package aggregates holds the error vocabulary shared by the staffing
// services, stores and transport.
//
// Callers branch on Code via IsCode or CodeOf; Message is safe to show to
// API clients for every code except CodeInternal.
package aggregates

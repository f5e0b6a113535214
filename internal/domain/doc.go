// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/checklist) and name
// handling lives in domain/naming. This root package holds the sentinel
// errors and the typed errors that every layer inspects with errors.Is and
// errors.As.
package domain

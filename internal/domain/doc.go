// Package domain contains the error vocabulary shared by every layer.
// Form rules live in domain/validation; account forms and users live in
// domain/account.
package domain

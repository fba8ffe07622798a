// Package account models the marketplace account forms (sign-up, sign-in,
// supplier profile) and the users they produce. Each form reports one
// result per field; Validate turns a failing report into a *FormError.
package account

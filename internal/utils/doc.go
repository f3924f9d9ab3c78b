// Package utils provides a collection of helper functions shared across the application,
// such as safe type conversion, content type validation, and User-Agent management.
package utils

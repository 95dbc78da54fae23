//go:build tools

package tools

// This file tracks CLI tools used during development.
// It is not compiled into the binary.
//
// - github.com/matryer/moq: *_mock_test.go and mocks_test.go files
// - github.com/pressly/goose/v3/cmd/goose: ad-hoc migration status/down

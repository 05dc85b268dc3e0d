package factory

import (
	fab "github.com/Goldziher/fabricator"
	"golang.org/x/crypto/bcrypt"
)

// NewUser builds a fixture user. Unless the caller sets Password, it gets
// the bcrypt hash of "12345678" so login paths work against fixtures.
func NewUser[T any](customData ...map[string]any) T {
	instance := fab.New(*new(T))

	hasPassword := false

	for _, data := range customData {
		if _, exists := data["Password"]; exists {
			hasPassword = true
			break
		}
	}

	if !hasPassword {
		encrypted, _ := bcrypt.GenerateFromPassword([]byte("12345678"), bcrypt.DefaultCost)

		customData = append(customData, map[string]any{
			"Password": string(encrypted),
		})
	}

	return instance.Build(customData...)
}

func NewTodo[T any](customData ...map[string]any) T {
	instance := fab.New(*new(T))

	if len(customData) > 0 {
		return instance.Build(customData...)
	}

	return instance.Build()
}

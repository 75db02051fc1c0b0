package services

import (
	"encoding/base64"
	"fmt"
	"math/rand"

	"github.com/bobinette/photopilot/errors"
)

// errUserNotFound returns a 404 for when a user could not be found.
func errUserNotFound(id int) error {
	return errors.New(fmt.Sprintf("No user for id %d", id), errors.NotFound())
}

func randToken(size int) string {
	b := make([]byte, size)
	rand.Read(b)
	return base64.StdEncoding.EncodeToString(b)
}

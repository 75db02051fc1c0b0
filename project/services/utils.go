package services

import (
	"fmt"

	"github.com/bobinette/photopilot/errors"
)

// errProjectNotFound returns a 404 for when a project could not be found.
func errProjectNotFound(id int) error {
	return errors.New(fmt.Sprintf("No project for id %d", id), errors.NotFound())
}

// errMediaNotFound returns a 404 for when a media asset could not be found.
func errMediaNotFound(id int) error {
	return errors.New(fmt.Sprintf("No media asset for id %d", id), errors.NotFound())
}

// errUserNotFound returns a 404 for when a user could not be found.
func errUserNotFound(id int) error {
	return errors.New(fmt.Sprintf("No user for id %d", id), errors.NotFound())
}

// errNoAccess returns a 403 for when the caller holds no capability on the
// project.
func errNoAccess(id int) error {
	return errors.New(fmt.Sprintf("You cannot access project %d", id), errors.Forbidden())
}

// errNotOwner returns a 403 for owner-only operations.
func errNotOwner(id int) error {
	return errors.New(fmt.Sprintf("You are not the owner of project %d", id), errors.Forbidden())
}

// errCannotEditMedia returns a 403 for media mutations attempted without the
// editor capability.
func errCannotEditMedia(id int) error {
	return errors.New(fmt.Sprintf("You cannot edit media of project %d", id), errors.Forbidden())
}

package service

import (
	"fmt"

	"github.com/KlienGumapac/freedomewall/pkg/api"
)

// explain adds the next step for API errors the user can act on
func explain(err error) error {
	switch {
	case api.IsUnauthorized(err):
		return fmt.Errorf("%w: the saved token was rejected, run \"wallctl login\" again", err)
	case api.IsNotFound(err):
		return fmt.Errorf("%w: check the id", err)
	case api.IsConflict(err):
		return fmt.Errorf("%w: others wrote to the post at the same moment, run the command again", err)
	case api.IsServerError(err):
		return fmt.Errorf("%w: the server could not complete it, try again later", err)
	}
	return err
}

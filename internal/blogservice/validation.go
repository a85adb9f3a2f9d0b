package blogservice

import (
	"github.com/google/uuid"
	"github.com/sushihentaime/blogtasks/internal/common"
)

const maxNameLength = 255

func validateName(v *common.Validator, name string) {
	v.Check(name != "", "name", "must be provided")
	v.Check(v.CheckStringLength(name, 1, maxNameLength), "name", "must not be more than 255 bytes long")
}

func validateUserID(v *common.Validator, id uuid.UUID) {
	v.Check(v.CheckUUID(id), "user_id", "must be provided")
}

// ValidateCreateBlog checks a creation payload before it reaches the repository.
func ValidateCreateBlog(create CreateBlog) error {
	v := common.NewValidator()
	validateUserID(v, create.UserID)
	validateName(v, create.Name)
	if !v.Valid() {
		return v.ValidationError()
	}

	return nil
}

// ValidateUpdateBlog checks an update payload before it reaches the repository.
func ValidateUpdateBlog(update UpdateBlog) error {
	v := common.NewValidator()
	validateUserID(v, update.UserID)
	validateName(v, update.Name)
	if !v.Valid() {
		return v.ValidationError()
	}

	return nil
}

package domain

import (
	"errors"

	"github.com/google/uuid"
)

// errInvalidUUID is the identity error shared by every params validator.
// The string is part of the survey exchange format and is matched verbatim
// by downstream tooling.
var errInvalidUUID = errors.New("Uuidable validateParams: invalid uuid")

// ValidateUUIDParams checks the optional "id" key of an untrusted attribute
// bag. A missing id contributes no error — partial bags are legitimate
// input — but a present id must be a uuid.UUID or a syntactically valid
// UUID string.
//
// Every value object's params validator starts with this check, so the
// identity error always comes first in any combined error list.
func ValidateUUIDParams(params Params) []error {
	v, ok := params["id"]
	if !ok {
		return nil
	}
	switch id := v.(type) {
	case uuid.UUID:
		return nil
	case string:
		if _, err := uuid.Parse(id); err != nil {
			return []error{errInvalidUUID}
		}
		return nil
	default:
		return []error{errInvalidUUID}
	}
}

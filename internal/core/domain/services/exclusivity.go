package services

import (
	"errors"
	"fmt"

	"hangerflow/internal/core/domain/model/kernel"
	"hangerflow/internal/core/domain/model/workpackage"
	"hangerflow/internal/pkg/errs"
)

// ErrHangerClaimed matches HangerClaimedError through errors.Is.
var ErrHangerClaimed = errors.New("hanger is claimed by another open package")

// HangerClaimedError is a validation error: the hanger already belongs to a
// different open package.
type HangerClaimedError struct {
	HangerID  kernel.Code
	PackageID kernel.Code
}

func (e *HangerClaimedError) Error() string {
	return fmt.Sprintf("%s: hanger %s is in open package %s", errs.ErrValueIsInvalid, e.HangerID, e.PackageID)
}

func (e *HangerClaimedError) Unwrap() error {
	return errs.ErrValueIsInvalid
}

func (e *HangerClaimedError) Is(target error) bool {
	return target == ErrHangerClaimed
}

// CheckHangerExclusivity fails when any of hangerIDs is a member of an open
// package other than packageID.
func CheckHangerExclusivity(packageID kernel.Code, hangerIDs []kernel.Code, packages []*workpackage.Package) error {
	for _, p := range packages {
		if p == nil || p.ID() == packageID || !p.IsOpen() {
			continue
		}
		for _, id := range hangerIDs {
			if p.Contains(id) {
				return &HangerClaimedError{HangerID: id, PackageID: p.ID()}
			}
		}
	}
	return nil
}

package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hangerflow/internal/core/domain/model/audit"
	"hangerflow/internal/core/domain/model/exception"
	"hangerflow/internal/core/domain/model/inventory"
	"hangerflow/internal/core/domain/model/kernel"
	"hangerflow/internal/core/domain/model/workpackage"
	"hangerflow/internal/core/domain/services"
)

// ScanShortagesCommandHandler opens an InventoryShort exception with High
// severity for every kitted or in-fabrication package that still has a
// shortfall and has no active InventoryShort exception yet. Each package is
// handled in its own unit of work; one failing package does not stop the
// scan.
type ScanShortagesCommandHandler struct {
	uowFactory UoWFactory
	calculator services.DemandCalculator
}

func NewScanShortagesCommandHandler(uowFactory UoWFactory) ScanShortagesCommandHandler {
	return ScanShortagesCommandHandler{
		uowFactory: uowFactory,
		calculator: services.NewDemandCalculator(),
	}
}

var shortageWatchStatuses = []workpackage.Status{workpackage.Kitted, workpackage.InFabrication}

// Handle returns the number of exceptions it opened.
func (h ScanShortagesCommandHandler) Handle(ctx context.Context, command ScanShortagesCommand) (int, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	ids, err := h.candidates(ctx)
	if err != nil {
		return 0, err
	}

	var (
		opened  int
		errList []error
	)
	for _, id := range ids {
		ok, scanErr := h.scanOne(ctx, id)
		if scanErr != nil {
			errList = append(errList, fmt.Errorf("package %s: %w", id, scanErr))
			continue
		}
		if ok {
			opened++
		}
	}
	return opened, errors.Join(errList...)
}

func (h ScanShortagesCommandHandler) candidates(ctx context.Context) ([]kernel.Code, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	packages, err := uow.PackageRepository().ListByStatus(ctx, shortageWatchStatuses...)
	if err != nil {
		return nil, err
	}
	ids := make([]kernel.Code, len(packages))
	for i, p := range packages {
		ids[i] = p.ID()
	}
	return ids, nil
}

func (h ScanShortagesCommandHandler) scanOne(ctx context.Context, id kernel.Code) (bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pkg, err := uow.PackageRepository().GetForUpdate(ctx, id)
	if err != nil {
		return false, err
	}
	if s := pkg.Status(); s != workpackage.Kitted && s != workpackage.InFabrication {
		return false, nil
	}

	lines, err := checkPackageInventory(ctx, uow, h.calculator, pkg)
	if err != nil {
		return false, err
	}
	short := inventory.Shortages(lines)
	if len(short) == 0 {
		return false, nil
	}

	existing, err := uow.ExceptionRepository().List(ctx, exception.Filter{
		Type: exception.InventoryShort,
		Ref:  id.String(),
	})
	if err != nil {
		return false, err
	}
	for _, e := range existing {
		if e.State().IsActive() && e.Ref().Kind == exception.RefPackage {
			return false, nil
		}
	}

	exc, err := exception.New(kernel.NewUUID(), exception.InventoryShort, exception.High,
		exception.Ref{Kind: exception.RefPackage, ID: id.String()}, shortageDescription(short), time.Now())
	if err != nil {
		return false, err
	}
	if err = uow.ExceptionRepository().Add(ctx, exc); err != nil {
		return false, err
	}

	if err = appendAudit(ctx, uow, auditEntry{
		actor:      audit.SystemActor,
		action:     ActionExceptionCreated,
		entityType: audit.EntityException,
		entityID:   exc.ID().String(),
		after:      exc.Snapshot(),
	}); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}
	return true, nil
}

func shortageDescription(lines []inventory.Line) string {
	parts := make([]string, len(lines))
	for i, l := range lines {
		parts[i] = fmt.Sprintf("%s short %s %s", l.SKU, l.Shortfall, l.UOM)
	}
	return "Material shortfall: " + strings.Join(parts, "; ")
}

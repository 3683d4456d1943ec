package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"subleasehub/internal/domain/entity"
	"subleasehub/internal/domain/repository"
	"subleasehub/internal/domain/service"
	"subleasehub/pkg/errors"
	"subleasehub/pkg/logger"
)

const contractDateLayout = "01/02/2006"

// ContractField is one template value. Pending fields keep their
// {TOKEN} in the rendered document so a later render of the same
// template can fill them in once the value exists.
type ContractField struct {
	Value    string
	Resolved bool
}

func resolved(value string) ContractField {
	return ContractField{Value: value, Resolved: true}
}

func pending() ContractField {
	return ContractField{}
}

// BuildContractFields projects an agreement and its related records
// into the template field map. Pure: same inputs, same map.
func BuildContractFields(agreement *entity.Agreement, listing *entity.Listing, owner, tenant *entity.User, now time.Time) map[string]ContractField {
	fields := map[string]ContractField{
		"OWNER_NAME":  resolved(owner.Name),
		"TENANT_NAME": resolved(tenant.Name),
		"ADDRESS":     resolved(listing.Address),
		"DATE":        resolved(now.Format(contractDateLayout)),
		"START_DATE":  resolved(agreement.StartDate.Format(contractDateLayout)),
		"END_DATE":    resolved(agreement.EndDate.Format(contractDateLayout)),
		"RENT":        resolved(strconv.FormatFloat(agreement.Rent, 'f', -1, 64)),
		"DEPOSIT":     resolved(strconv.FormatFloat(agreement.SecurityDeposit, 'f', -1, 64)),

		"OWNER_SIGNATURE":  pending(),
		"OWNER_SIGN_DATE":  pending(),
		"TENANT_SIGNATURE": pending(),
		"TENANT_SIGN_DATE": pending(),
	}

	if agreement.OwnerSigned() {
		fields["OWNER_SIGNATURE"] = resolved(owner.Name)
		fields["OWNER_SIGN_DATE"] = resolved(agreement.OwnerSignedAt.Format(contractDateLayout))
	}
	if agreement.TenantSigned() {
		fields["TENANT_SIGNATURE"] = resolved(tenant.Name)
		fields["TENANT_SIGN_DATE"] = resolved(agreement.TenantSignedAt.Format(contractDateLayout))
	}

	return fields
}

type ContractUseCase struct {
	agreementRepo repository.AgreementRepository
	listingRepo   repository.ListingRepository
	userRepo      repository.UserRepository
	templater     service.ContractTemplater
	converter     service.PDFConverter
	templatePath  string
}

func NewContractUseCase(
	agreementRepo repository.AgreementRepository,
	listingRepo repository.ListingRepository,
	userRepo repository.UserRepository,
	templater service.ContractTemplater,
	converter service.PDFConverter,
	templatePath string,
) *ContractUseCase {
	return &ContractUseCase{
		agreementRepo: agreementRepo,
		listingRepo:   listingRepo,
		userRepo:      userRepo,
		templater:     templater,
		converter:     converter,
		templatePath:  templatePath,
	}
}

// RenderContract fills the sublease template for the agreement and
// converts it to pdf. The caller streams the file and removes the
// returned directory when done.
func (uc *ContractUseCase) RenderContract(ctx context.Context, agreementID string) (string, error) {
	agreement, err := uc.agreementRepo.GetByID(ctx, agreementID)
	if err != nil {
		return "", err
	}

	listing, err := uc.listingRepo.GetByID(ctx, agreement.ListingID)
	if err != nil {
		return "", err
	}

	owner, err := uc.userRepo.GetByID(ctx, agreement.OwnerID)
	if err != nil {
		return "", err
	}

	tenant, err := uc.userRepo.GetByID(ctx, agreement.TenantID)
	if err != nil {
		return "", err
	}

	fields := BuildContractFields(agreement, listing, owner, tenant, time.Now())

	substitutions := make(map[string]string)
	for key, field := range fields {
		if field.Resolved {
			substitutions[key] = field.Value
		}
	}

	workDir, err := os.MkdirTemp("", "contract-")
	if err != nil {
		return "", errors.Internal("Failed to create work directory", err)
	}

	docxPath := filepath.Join(workDir, fmt.Sprintf("sublease-agreement-%s.docx", agreement.ID))
	if err := uc.templater.Fill(uc.templatePath, docxPath, substitutions); err != nil {
		os.RemoveAll(workDir)
		return "", errors.Internal("Failed to fill contract template", err)
	}

	pdfPath, err := uc.converter.Convert(ctx, docxPath, workDir)
	if err != nil {
		os.RemoveAll(workDir)
		return "", errors.Internal("Failed to convert contract to pdf", err)
	}

	logger.Info("rendered contract for agreement %s", agreement.ID)
	return pdfPath, nil
}

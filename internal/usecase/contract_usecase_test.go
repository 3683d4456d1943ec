package usecase

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"subleasehub/internal/domain/entity"
)

func contractFixtures() (*entity.Agreement, *entity.Listing, *entity.User, *entity.User) {
	agreement := &entity.Agreement{
		ID:              "agreement-1",
		ListingID:       "listing-1",
		OwnerID:         "owner-1",
		TenantID:        "tenant-1",
		StartDate:       date("2026-01-01"),
		EndDate:         date("2026-05-31"),
		Rent:            1100,
		SecurityDeposit: 1100,
		NumPeople:       1,
		PayTerm:         entity.PayTermMonthly,
	}
	listing := &entity.Listing{
		ID:      "listing-1",
		Address: "123 State St, Madison WI",
		OwnerID: "owner-1",
	}
	owner := &entity.User{ID: "owner-1", Name: "John Doe"}
	tenant := &entity.User{ID: "tenant-1", Name: "Alice Smith"}
	return agreement, listing, owner, tenant
}

func TestBuildContractFields(t *testing.T) {
	agreement, listing, owner, tenant := contractFixtures()
	now := date("2025-11-22")

	t.Run("unsigned agreement leaves signature fields pending", func(t *testing.T) {
		fields := BuildContractFields(agreement, listing, owner, tenant, now)

		assert.Equal(t, ContractField{Value: "John Doe", Resolved: true}, fields["OWNER_NAME"])
		assert.Equal(t, ContractField{Value: "Alice Smith", Resolved: true}, fields["TENANT_NAME"])
		assert.Equal(t, ContractField{Value: "123 State St, Madison WI", Resolved: true}, fields["ADDRESS"])
		assert.Equal(t, ContractField{Value: "11/22/2025", Resolved: true}, fields["DATE"])
		assert.Equal(t, ContractField{Value: "01/01/2026", Resolved: true}, fields["START_DATE"])
		assert.Equal(t, ContractField{Value: "05/31/2026", Resolved: true}, fields["END_DATE"])
		assert.Equal(t, ContractField{Value: "1100", Resolved: true}, fields["RENT"])
		assert.Equal(t, ContractField{Value: "1100", Resolved: true}, fields["DEPOSIT"])

		assert.False(t, fields["OWNER_SIGNATURE"].Resolved)
		assert.False(t, fields["OWNER_SIGN_DATE"].Resolved)
		assert.False(t, fields["TENANT_SIGNATURE"].Resolved)
		assert.False(t, fields["TENANT_SIGN_DATE"].Resolved)
	})

	t.Run("owner signature resolves after signing", func(t *testing.T) {
		signedAt := date("2026-01-15")
		agreement.OwnerSignedAt = &signedAt
		defer func() { agreement.OwnerSignedAt = nil }()

		fields := BuildContractFields(agreement, listing, owner, tenant, now)

		assert.Equal(t, ContractField{Value: "John Doe", Resolved: true}, fields["OWNER_SIGNATURE"])
		assert.Equal(t, ContractField{Value: "01/15/2026", Resolved: true}, fields["OWNER_SIGN_DATE"])
		assert.False(t, fields["TENANT_SIGNATURE"].Resolved)
	})

	t.Run("deterministic for identical inputs", func(t *testing.T) {
		first := BuildContractFields(agreement, listing, owner, tenant, now)
		second := BuildContractFields(agreement, listing, owner, tenant, now)
		assert.Equal(t, first, second)
	})
}

type recordingTemplater struct {
	fields map[string]string
}

func (r *recordingTemplater) Fill(templatePath, outputPath string, fields map[string]string) error {
	r.fields = fields
	return os.WriteFile(outputPath, []byte("docx"), 0o644)
}

type fakeConverter struct{}

func (fakeConverter) Convert(ctx context.Context, docxPath, outputDir string) (string, error) {
	pdfPath := filepath.Join(outputDir, "out.pdf")
	return pdfPath, os.WriteFile(pdfPath, []byte("%PDF"), 0o644)
}

func TestRenderContract(t *testing.T) {
	ctx := context.Background()

	agreement, listing, owner, tenant := contractFixtures()

	agreementRepo := newFakeAgreementRepo()
	listingRepo := newFakeListingRepo()
	userRepo := newFakeUserRepo()

	require.NoError(t, listingRepo.Create(ctx, listing))
	require.NoError(t, userRepo.Create(ctx, owner))
	require.NoError(t, userRepo.Create(ctx, tenant))
	signedAt := time.Now()
	agreement.TenantSignedAt = &signedAt
	require.NoError(t, agreementRepo.CreateIfAvailable(ctx, agreement))

	templater := &recordingTemplater{}
	uc := NewContractUseCase(agreementRepo, listingRepo, userRepo, templater, fakeConverter{}, "template.docx")

	pdfPath, err := uc.RenderContract(ctx, agreement.ID)
	require.NoError(t, err)
	defer os.RemoveAll(filepath.Dir(pdfPath))

	_, statErr := os.Stat(pdfPath)
	assert.NoError(t, statErr)

	// Only resolved fields reach the templater; pending signature tokens
	// must survive for a later render pass.
	assert.Contains(t, templater.fields, "TENANT_SIGNATURE")
	assert.NotContains(t, templater.fields, "OWNER_SIGNATURE")
	assert.NotContains(t, templater.fields, "OWNER_SIGN_DATE")
	assert.Equal(t, "123 State St, Madison WI", templater.fields["ADDRESS"])
}

func TestRenderContractMissingAgreement(t *testing.T) {
	uc := NewContractUseCase(newFakeAgreementRepo(), newFakeListingRepo(), newFakeUserRepo(), &recordingTemplater{}, fakeConverter{}, "template.docx")

	_, err := uc.RenderContract(context.Background(), "missing")
	assert.Error(t, err)
}

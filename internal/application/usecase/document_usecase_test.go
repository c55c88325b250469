package usecase_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobforge/jobwork-api/internal/application/dto"
	"github.com/jobforge/jobwork-api/internal/application/usecase"
	"github.com/jobforge/jobwork-api/internal/domain"
	"github.com/jobforge/jobwork-api/internal/domain/entity"
	"github.com/jobforge/jobwork-api/internal/infrastructure/memory"
)

func newDocumentUseCase() *usecase.DocumentUseCase {
	return usecase.NewDocumentUseCase(memory.NewDocumentRepository(memory.NewStore()))
}

func docCaller() dto.Caller {
	return dto.Caller{UserID: "user-1", CompanyID: "company-1", Role: entity.RoleBuyer}
}

func uploadReq(kind string, payload []byte) dto.UploadDocumentRequest {
	return dto.UploadDocumentRequest{
		Kind:        kind,
		FileName:    "drawing.pdf",
		ContentType: "application/pdf",
		Content:     base64.StdEncoding.EncodeToString(payload),
	}
}

func TestUpload_StoresDecodedSize(t *testing.T) {
	uc := newDocumentUseCase()

	payload := []byte("technical drawing bytes")
	in := uploadReq(entity.DocumentKindDocument, payload)
	in.ClaimedSize = 1 // lies about the size; the server must not care

	out, err := uc.Upload(context.Background(), docCaller(), in)
	require.NoError(t, err)
	assert.Equal(t, len(payload), out.SizeBytes)
	assert.Equal(t, "company-1", out.CompanyID)
	assert.Equal(t, "user-1", out.UploadedBy)
	assert.NotEmpty(t, out.StorageRef)
}

// Browser FileReader output arrives as a data URL; the prefix is stripped
// before decoding.
func TestUpload_DataURLPrefix_Tolerated(t *testing.T) {
	uc := newDocumentUseCase()

	payload := []byte{0x89, 0x50, 0x4E, 0x47}
	in := uploadReq(entity.DocumentKindImage, payload)
	in.Content = "data:image/png;base64," + in.Content
	in.FileName = "photo.png"

	out, err := uc.Upload(context.Background(), docCaller(), in)
	require.NoError(t, err)
	assert.Equal(t, len(payload), out.SizeBytes)
}

func TestUpload_UnknownKind_Rejected(t *testing.T) {
	uc := newDocumentUseCase()

	_, err := uc.Upload(context.Background(), docCaller(), uploadReq("spreadsheet", []byte("x")))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpload_WithoutCompany_Rejected(t *testing.T) {
	uc := newDocumentUseCase()

	caller := dto.Caller{UserID: "user-1", Role: entity.RoleBuyer}
	_, err := uc.Upload(context.Background(), caller, uploadReq(entity.DocumentKindDocument, []byte("x")))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpload_InvalidBase64_Rejected(t *testing.T) {
	uc := newDocumentUseCase()

	in := uploadReq(entity.DocumentKindDocument, nil)
	in.Content = "not//valid==base64!!"
	_, err := uc.Upload(context.Background(), docCaller(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// The cap is enforced on the decoded length: one byte over the 5 MiB
// document cap fails, exactly at the cap passes.
func TestUpload_DecodedSizeCap(t *testing.T) {
	uc := newDocumentUseCase()
	maxBytes := entity.MaxDocumentSize(entity.DocumentKindDocument)

	over := uploadReq(entity.DocumentKindDocument, bytes.Repeat([]byte{0xAB}, maxBytes+1))
	_, err := uc.Upload(context.Background(), docCaller(), over)
	assert.ErrorIs(t, err, domain.ErrFileTooLarge)

	exact := uploadReq(entity.DocumentKindDocument, bytes.Repeat([]byte{0xAB}, maxBytes))
	out, err := uc.Upload(context.Background(), docCaller(), exact)
	require.NoError(t, err)
	assert.Equal(t, maxBytes, out.SizeBytes)
}

func TestList_ScopedToCallerCompany(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewDocumentUseCase(memory.NewDocumentRepository(store))

	_, err := uc.Upload(context.Background(), docCaller(), uploadReq(entity.DocumentKindDocument, []byte("mine")))
	require.NoError(t, err)
	other := dto.Caller{UserID: "user-2", CompanyID: "company-2", Role: entity.RoleSupplier}
	_, err = uc.Upload(context.Background(), other, uploadReq(entity.DocumentKindDocument, []byte("theirs")))
	require.NoError(t, err)

	out, err := uc.List(context.Background(), docCaller(), dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "company-1", out.Items[0].CompanyID)
}

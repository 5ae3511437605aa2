package server

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"

	"github.com/joseph-ayodele/contract-intel/gen/ent"
	contractspb "github.com/joseph-ayodele/contract-intel/gen/proto/contracts/v1"
	"github.com/joseph-ayodele/contract-intel/internal/async"
	"github.com/joseph-ayodele/contract-intel/internal/entity"
	"github.com/joseph-ayodele/contract-intel/internal/ingest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubIngestor struct {
	gotSkipHidden *bool
}

func (s *stubIngestor) IngestBytes(context.Context, string, []byte) (ingest.IngestionResult, error) {
	return ingest.IngestionResult{}, nil
}

func (s *stubIngestor) IngestPath(context.Context, string) (ingest.IngestionResult, error) {
	return ingest.IngestionResult{}, nil
}

func (s *stubIngestor) IngestDirectory(_ context.Context, _ string, skipHidden bool) ([]ingest.IngestionResult, ingest.DirStats, error) {
	s.gotSkipHidden = &skipHidden
	return nil, ingest.DirStats{}, nil
}

type stubQueue struct {
	jobs []async.Job
}

func (q *stubQueue) Enqueue(_ context.Context, job async.Job) error {
	q.jobs = append(q.jobs, job)
	return nil
}

func (q *stubQueue) Shutdown(context.Context) {}

func TestIngestDirectorySkipHiddenDefaultsTrue(t *testing.T) {
	ing := &stubIngestor{}
	svc := NewIngestionService(ing, &stubQueue{}, discardLogger())

	_, err := svc.IngestDirectory(context.Background(), &contractspb.IngestDirectoryRequest{
		RootPath: "/contracts/in",
	})
	require.NoError(t, err)
	require.NotNil(t, ing.gotSkipHidden)
	assert.True(t, *ing.gotSkipHidden)
}

func TestIngestDirectorySkipHiddenExplicitFalse(t *testing.T) {
	ing := &stubIngestor{}
	svc := NewIngestionService(ing, &stubQueue{}, discardLogger())

	_, err := svc.IngestDirectory(context.Background(), &contractspb.IngestDirectoryRequest{
		RootPath:   "/contracts/in",
		SkipHidden: proto.Bool(false),
	})
	require.NoError(t, err)
	require.NotNil(t, ing.gotSkipHidden)
	assert.False(t, *ing.gotSkipHidden)
}

func TestIngestDirectoryMissingRoot(t *testing.T) {
	svc := NewIngestionService(&stubIngestor{}, &stubQueue{}, discardLogger())

	_, err := svc.IngestDirectory(context.Background(), &contractspb.IngestDirectoryRequest{})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

type stubFilesRepo struct {
	files map[uuid.UUID]*entity.ContractFile
}

func (r *stubFilesRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.ContractFile, error) {
	if f, ok := r.files[id]; ok {
		return f, nil
	}
	return nil, &ent.NotFoundError{}
}

func (r *stubFilesRepo) GetByHash(context.Context, []byte) (*ent.ContractFile, error) {
	return nil, &ent.NotFoundError{}
}

func (r *stubFilesRepo) Create(context.Context, string, string, string, int, []byte, time.Time) (*ent.ContractFile, error) {
	return nil, nil
}

func (r *stubFilesRepo) UpsertByHash(context.Context, string, string, string, int, []byte, time.Time) (*ent.ContractFile, bool, error) {
	return nil, false, nil
}

func TestDownloadContract(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "msa.txt")
	require.NoError(t, os.WriteFile(path, []byte("SERVICE AGREEMENT"), 0o644))

	fileID := uuid.New()
	files := &stubFilesRepo{files: map[uuid.UUID]*entity.ContractFile{
		fileID: {ID: fileID, SourcePath: path, Filename: "msa.txt", FileExt: "txt"},
	}}
	svc := NewContractsService(nil, files, nil, discardLogger())

	resp, err := svc.DownloadContract(context.Background(), &contractspb.DownloadContractRequest{
		FileId: fileID.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, "msa.txt", resp.GetFilename())
	assert.Equal(t, "txt", resp.GetFileExt())
	assert.Equal(t, []byte("SERVICE AGREEMENT"), resp.GetContent())
}

func TestDownloadContractUnknownFile(t *testing.T) {
	svc := NewContractsService(nil, &stubFilesRepo{}, nil, discardLogger())

	_, err := svc.DownloadContract(context.Background(), &contractspb.DownloadContractRequest{
		FileId: uuid.NewString(),
	})
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestDownloadContractBadID(t *testing.T) {
	svc := NewContractsService(nil, &stubFilesRepo{}, nil, discardLogger())

	_, err := svc.DownloadContract(context.Background(), &contractspb.DownloadContractRequest{
		FileId: "not-a-uuid",
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

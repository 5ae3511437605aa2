// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: contracts/v1/contracts.proto

package contractsv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type UploadContractRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Filename      string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	Content       []byte                 `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadContractRequest) Reset() {
	*x = UploadContractRequest{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadContractRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadContractRequest) ProtoMessage() {}

func (x *UploadContractRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadContractRequest.ProtoReflect.Descriptor instead.
func (*UploadContractRequest) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{0}
}

func (x *UploadContractRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *UploadContractRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

type IngestFileRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Path          string                 `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestFileRequest) Reset() {
	*x = IngestFileRequest{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestFileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestFileRequest) ProtoMessage() {}

func (x *IngestFileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestFileRequest.ProtoReflect.Descriptor instead.
func (*IngestFileRequest) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{1}
}

func (x *IngestFileRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

type IngestDirectoryRequest struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	RootPath string                 `protobuf:"bytes,1,opt,name=root_path,json=rootPath,proto3" json:"root_path,omitempty"`
	// Hidden files are skipped when unset.
	SkipHidden    *bool `protobuf:"varint,2,opt,name=skip_hidden,json=skipHidden,proto3,oneof" json:"skip_hidden,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDirectoryRequest) Reset() {
	*x = IngestDirectoryRequest{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryRequest) ProtoMessage() {}

func (x *IngestDirectoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDirectoryRequest.ProtoReflect.Descriptor instead.
func (*IngestDirectoryRequest) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{2}
}

func (x *IngestDirectoryRequest) GetRootPath() string {
	if x != nil {
		return x.RootPath
	}
	return ""
}

func (x *IngestDirectoryRequest) GetSkipHidden() bool {
	if x != nil && x.SkipHidden != nil {
		return *x.SkipHidden
	}
	return false
}

type IngestResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	FileId         string                 `protobuf:"bytes,1,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	Deduplicated   bool                   `protobuf:"varint,2,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	ContentHashHex string                 `protobuf:"bytes,3,opt,name=content_hash_hex,json=contentHashHex,proto3" json:"content_hash_hex,omitempty"`
	FileExt        string                 `protobuf:"bytes,4,opt,name=file_ext,json=fileExt,proto3" json:"file_ext,omitempty"`
	UploadedAt     string                 `protobuf:"bytes,5,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"`
	SourcePath     string                 `protobuf:"bytes,6,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"`
	Error          string                 `protobuf:"bytes,7,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *IngestResponse) Reset() {
	*x = IngestResponse{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestResponse) ProtoMessage() {}

func (x *IngestResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestResponse.ProtoReflect.Descriptor instead.
func (*IngestResponse) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{3}
}

func (x *IngestResponse) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

func (x *IngestResponse) GetDeduplicated() bool {
	if x != nil {
		return x.Deduplicated
	}
	return false
}

func (x *IngestResponse) GetContentHashHex() string {
	if x != nil {
		return x.ContentHashHex
	}
	return ""
}

func (x *IngestResponse) GetFileExt() string {
	if x != nil {
		return x.FileExt
	}
	return ""
}

func (x *IngestResponse) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

func (x *IngestResponse) GetSourcePath() string {
	if x != nil {
		return x.SourcePath
	}
	return ""
}

func (x *IngestResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type IngestDirectoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Scanned       uint32                 `protobuf:"varint,1,opt,name=scanned,proto3" json:"scanned,omitempty"`
	Matched       uint32                 `protobuf:"varint,2,opt,name=matched,proto3" json:"matched,omitempty"`
	Succeeded     uint32                 `protobuf:"varint,3,opt,name=succeeded,proto3" json:"succeeded,omitempty"`
	Deduplicated  uint32                 `protobuf:"varint,4,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	Failed        uint32                 `protobuf:"varint,5,opt,name=failed,proto3" json:"failed,omitempty"`
	Results       []*IngestResponse      `protobuf:"bytes,6,rep,name=results,proto3" json:"results,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDirectoryResponse) Reset() {
	*x = IngestDirectoryResponse{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryResponse) ProtoMessage() {}

func (x *IngestDirectoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDirectoryResponse.ProtoReflect.Descriptor instead.
func (*IngestDirectoryResponse) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{4}
}

func (x *IngestDirectoryResponse) GetScanned() uint32 {
	if x != nil {
		return x.Scanned
	}
	return 0
}

func (x *IngestDirectoryResponse) GetMatched() uint32 {
	if x != nil {
		return x.Matched
	}
	return 0
}

func (x *IngestDirectoryResponse) GetSucceeded() uint32 {
	if x != nil {
		return x.Succeeded
	}
	return 0
}

func (x *IngestDirectoryResponse) GetDeduplicated() uint32 {
	if x != nil {
		return x.Deduplicated
	}
	return 0
}

func (x *IngestDirectoryResponse) GetFailed() uint32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

func (x *IngestDirectoryResponse) GetResults() []*IngestResponse {
	if x != nil {
		return x.Results
	}
	return nil
}

type GetContractStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FileId        string                 `protobuf:"bytes,1,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetContractStatusRequest) Reset() {
	*x = GetContractStatusRequest{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetContractStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetContractStatusRequest) ProtoMessage() {}

func (x *GetContractStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetContractStatusRequest.ProtoReflect.Descriptor instead.
func (*GetContractStatusRequest) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{5}
}

func (x *GetContractStatusRequest) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

type GetContractStatusResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	FileId        string                 `protobuf:"bytes,2,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	Filename      string                 `protobuf:"bytes,3,opt,name=filename,proto3" json:"filename,omitempty"`
	Status        string                 `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`
	Progress      int32                  `protobuf:"varint,5,opt,name=progress,proto3" json:"progress,omitempty"`
	ErrorMessage  string                 `protobuf:"bytes,6,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	StartedAt     string                 `protobuf:"bytes,7,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	FinishedAt    string                 `protobuf:"bytes,8,opt,name=finished_at,json=finishedAt,proto3" json:"finished_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetContractStatusResponse) Reset() {
	*x = GetContractStatusResponse{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetContractStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetContractStatusResponse) ProtoMessage() {}

func (x *GetContractStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetContractStatusResponse.ProtoReflect.Descriptor instead.
func (*GetContractStatusResponse) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{6}
}

func (x *GetContractStatusResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *GetContractStatusResponse) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

func (x *GetContractStatusResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *GetContractStatusResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *GetContractStatusResponse) GetProgress() int32 {
	if x != nil {
		return x.Progress
	}
	return 0
}

func (x *GetContractStatusResponse) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *GetContractStatusResponse) GetStartedAt() string {
	if x != nil {
		return x.StartedAt
	}
	return ""
}

func (x *GetContractStatusResponse) GetFinishedAt() string {
	if x != nil {
		return x.FinishedAt
	}
	return ""
}

type GetContractDataRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FileId        string                 `protobuf:"bytes,1,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetContractDataRequest) Reset() {
	*x = GetContractDataRequest{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetContractDataRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetContractDataRequest) ProtoMessage() {}

func (x *GetContractDataRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetContractDataRequest.ProtoReflect.Descriptor instead.
func (*GetContractDataRequest) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{7}
}

func (x *GetContractDataRequest) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

type GetContractDataResponse struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	JobId           string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	ContractId      string                 `protobuf:"bytes,2,opt,name=contract_id,json=contractId,proto3" json:"contract_id,omitempty"`
	ExtractedJson   string                 `protobuf:"bytes,3,opt,name=extracted_json,json=extractedJson,proto3" json:"extracted_json,omitempty"`
	ConfidenceScore int32                  `protobuf:"varint,4,opt,name=confidence_score,json=confidenceScore,proto3" json:"confidence_score,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *GetContractDataResponse) Reset() {
	*x = GetContractDataResponse{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetContractDataResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetContractDataResponse) ProtoMessage() {}

func (x *GetContractDataResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetContractDataResponse.ProtoReflect.Descriptor instead.
func (*GetContractDataResponse) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{8}
}

func (x *GetContractDataResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *GetContractDataResponse) GetContractId() string {
	if x != nil {
		return x.ContractId
	}
	return ""
}

func (x *GetContractDataResponse) GetExtractedJson() string {
	if x != nil {
		return x.ExtractedJson
	}
	return ""
}

func (x *GetContractDataResponse) GetConfidenceScore() int32 {
	if x != nil {
		return x.ConfidenceScore
	}
	return 0
}

type JobSummary struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	JobId           string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	FileId          string                 `protobuf:"bytes,2,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	Filename        string                 `protobuf:"bytes,3,opt,name=filename,proto3" json:"filename,omitempty"`
	Format          string                 `protobuf:"bytes,4,opt,name=format,proto3" json:"format,omitempty"`
	Status          string                 `protobuf:"bytes,5,opt,name=status,proto3" json:"status,omitempty"`
	Progress        int32                  `protobuf:"varint,6,opt,name=progress,proto3" json:"progress,omitempty"`
	ConfidenceScore int32                  `protobuf:"varint,7,opt,name=confidence_score,json=confidenceScore,proto3" json:"confidence_score,omitempty"`
	StartedAt       string                 `protobuf:"bytes,8,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	FinishedAt      string                 `protobuf:"bytes,9,opt,name=finished_at,json=finishedAt,proto3" json:"finished_at,omitempty"`
	ErrorMessage    string                 `protobuf:"bytes,10,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *JobSummary) Reset() {
	*x = JobSummary{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *JobSummary) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*JobSummary) ProtoMessage() {}

func (x *JobSummary) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use JobSummary.ProtoReflect.Descriptor instead.
func (*JobSummary) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{9}
}

func (x *JobSummary) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *JobSummary) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

func (x *JobSummary) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *JobSummary) GetFormat() string {
	if x != nil {
		return x.Format
	}
	return ""
}

func (x *JobSummary) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *JobSummary) GetProgress() int32 {
	if x != nil {
		return x.Progress
	}
	return 0
}

func (x *JobSummary) GetConfidenceScore() int32 {
	if x != nil {
		return x.ConfidenceScore
	}
	return 0
}

func (x *JobSummary) GetStartedAt() string {
	if x != nil {
		return x.StartedAt
	}
	return ""
}

func (x *JobSummary) GetFinishedAt() string {
	if x != nil {
		return x.FinishedAt
	}
	return ""
}

func (x *JobSummary) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

type ListContractsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	Offset        int32                  `protobuf:"varint,2,opt,name=offset,proto3" json:"offset,omitempty"`
	Limit         int32                  `protobuf:"varint,3,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListContractsRequest) Reset() {
	*x = ListContractsRequest{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListContractsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListContractsRequest) ProtoMessage() {}

func (x *ListContractsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListContractsRequest.ProtoReflect.Descriptor instead.
func (*ListContractsRequest) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{10}
}

func (x *ListContractsRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ListContractsRequest) GetOffset() int32 {
	if x != nil {
		return x.Offset
	}
	return 0
}

func (x *ListContractsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ListContractsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Jobs          []*JobSummary          `protobuf:"bytes,1,rep,name=jobs,proto3" json:"jobs,omitempty"`
	Total         int32                  `protobuf:"varint,2,opt,name=total,proto3" json:"total,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListContractsResponse) Reset() {
	*x = ListContractsResponse{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListContractsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListContractsResponse) ProtoMessage() {}

func (x *ListContractsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListContractsResponse.ProtoReflect.Descriptor instead.
func (*ListContractsResponse) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{11}
}

func (x *ListContractsResponse) GetJobs() []*JobSummary {
	if x != nil {
		return x.Jobs
	}
	return nil
}

func (x *ListContractsResponse) GetTotal() int32 {
	if x != nil {
		return x.Total
	}
	return 0
}

type ExportContractsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FromDate      string                 `protobuf:"bytes,1,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, optional
	ToDate        string                 `protobuf:"bytes,2,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, optional
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportContractsRequest) Reset() {
	*x = ExportContractsRequest{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportContractsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportContractsRequest) ProtoMessage() {}

func (x *ExportContractsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportContractsRequest.ProtoReflect.Descriptor instead.
func (*ExportContractsRequest) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{12}
}

func (x *ExportContractsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportContractsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportContractsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportContractsResponse) Reset() {
	*x = ExportContractsResponse{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportContractsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportContractsResponse) ProtoMessage() {}

func (x *ExportContractsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportContractsResponse.ProtoReflect.Descriptor instead.
func (*ExportContractsResponse) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{13}
}

func (x *ExportContractsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

type DownloadContractRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FileId        string                 `protobuf:"bytes,1,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DownloadContractRequest) Reset() {
	*x = DownloadContractRequest{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DownloadContractRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DownloadContractRequest) ProtoMessage() {}

func (x *DownloadContractRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DownloadContractRequest.ProtoReflect.Descriptor instead.
func (*DownloadContractRequest) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{14}
}

func (x *DownloadContractRequest) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

type DownloadContractResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Filename      string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	FileExt       string                 `protobuf:"bytes,2,opt,name=file_ext,json=fileExt,proto3" json:"file_ext,omitempty"`
	Content       []byte                 `protobuf:"bytes,3,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DownloadContractResponse) Reset() {
	*x = DownloadContractResponse{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DownloadContractResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DownloadContractResponse) ProtoMessage() {}

func (x *DownloadContractResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DownloadContractResponse.ProtoReflect.Descriptor instead.
func (*DownloadContractResponse) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{15}
}

func (x *DownloadContractResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *DownloadContractResponse) GetFileExt() string {
	if x != nil {
		return x.FileExt
	}
	return ""
}

func (x *DownloadContractResponse) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

var File_contracts_v1_contracts_proto protoreflect.FileDescriptor

const file_contracts_v1_contracts_proto_rawDesc = "" +
	"\n" +
	"\x1ccontracts/v1/contracts.proto\x12\fcontracts.v1\"M\n" +
	"\x15UploadContractRequest\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12\x18\n" +
	"\acontent\x18\x02 \x01(\fR\acontent\"'\n" +
	"\x11IngestFileRequest\x12\x12\n" +
	"\x04path\x18\x01 \x01(\tR\x04path\"k\n" +
	"\x16IngestDirectoryRequest\x12\x1b\n" +
	"\troot_path\x18\x01 \x01(\tR\brootPath\x12$\n" +
	"\vskip_hidden\x18\x02 \x01(\bH\x00R\n" +
	"skipHidden\x88\x01\x01B\x0e\n" +
	"\f_skip_hidden\"\xea\x01\n" +
	"\x0eIngestResponse\x12\x17\n" +
	"\afile_id\x18\x01 \x01(\tR\x06fileId\x12\"\n" +
	"\fdeduplicated\x18\x02 \x01(\bR\fdeduplicated\x12(\n" +
	"\x10content_hash_hex\x18\x03 \x01(\tR\x0econtentHashHex\x12\x19\n" +
	"\bfile_ext\x18\x04 \x01(\tR\afileExt\x12\x1f\n" +
	"\vuploaded_at\x18\x05 \x01(\tR\n" +
	"uploadedAt\x12\x1f\n" +
	"\vsource_path\x18\x06 \x01(\tR\n" +
	"sourcePath\x12\x14\n" +
	"\x05error\x18\a \x01(\tR\x05error\"\xdf\x01\n" +
	"\x17IngestDirectoryResponse\x12\x18\n" +
	"\ascanned\x18\x01 \x01(\rR\ascanned\x12\x18\n" +
	"\amatched\x18\x02 \x01(\rR\amatched\x12\x1c\n" +
	"\tsucceeded\x18\x03 \x01(\rR\tsucceeded\x12\"\n" +
	"\fdeduplicated\x18\x04 \x01(\rR\fdeduplicated\x12\x16\n" +
	"\x06failed\x18\x05 \x01(\rR\x06failed\x126\n" +
	"\aresults\x18\x06 \x03(\v2\x1c.contracts.v1.IngestResponseR\aresults\"3\n" +
	"\x18GetContractStatusRequest\x12\x17\n" +
	"\afile_id\x18\x01 \x01(\tR\x06fileId\"\x80\x02\n" +
	"\x19GetContractStatusResponse\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x17\n" +
	"\afile_id\x18\x02 \x01(\tR\x06fileId\x12\x1a\n" +
	"\bfilename\x18\x03 \x01(\tR\bfilename\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\x12\x1a\n" +
	"\bprogress\x18\x05 \x01(\x05R\bprogress\x12#\n" +
	"\rerror_message\x18\x06 \x01(\tR\ferrorMessage\x12\x1d\n" +
	"\n" +
	"started_at\x18\a \x01(\tR\tstartedAt\x12\x1f\n" +
	"\vfinished_at\x18\b \x01(\tR\n" +
	"finishedAt\"1\n" +
	"\x16GetContractDataRequest\x12\x17\n" +
	"\afile_id\x18\x01 \x01(\tR\x06fileId\"\xa3\x01\n" +
	"\x17GetContractDataResponse\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x1f\n" +
	"\vcontract_id\x18\x02 \x01(\tR\n" +
	"contractId\x12%\n" +
	"\x0eextracted_json\x18\x03 \x01(\tR\rextractedJson\x12)\n" +
	"\x10confidence_score\x18\x04 \x01(\x05R\x0fconfidenceScore\"\xb4\x02\n" +
	"\n" +
	"JobSummary\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x17\n" +
	"\afile_id\x18\x02 \x01(\tR\x06fileId\x12\x1a\n" +
	"\bfilename\x18\x03 \x01(\tR\bfilename\x12\x16\n" +
	"\x06format\x18\x04 \x01(\tR\x06format\x12\x16\n" +
	"\x06status\x18\x05 \x01(\tR\x06status\x12\x1a\n" +
	"\bprogress\x18\x06 \x01(\x05R\bprogress\x12)\n" +
	"\x10confidence_score\x18\a \x01(\x05R\x0fconfidenceScore\x12\x1d\n" +
	"\n" +
	"started_at\x18\b \x01(\tR\tstartedAt\x12\x1f\n" +
	"\vfinished_at\x18\t \x01(\tR\n" +
	"finishedAt\x12#\n" +
	"\rerror_message\x18\n" +
	" \x01(\tR\ferrorMessage\"\\\n" +
	"\x14ListContractsRequest\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x12\x16\n" +
	"\x06offset\x18\x02 \x01(\x05R\x06offset\x12\x14\n" +
	"\x05limit\x18\x03 \x01(\x05R\x05limit\"[\n" +
	"\x15ListContractsResponse\x12,\n" +
	"\x04jobs\x18\x01 \x03(\v2\x18.contracts.v1.JobSummaryR\x04jobs\x12\x14\n" +
	"\x05total\x18\x02 \x01(\x05R\x05total\"N\n" +
	"\x16ExportContractsRequest\x12\x1b\n" +
	"\tfrom_date\x18\x01 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x02 \x01(\tR\x06toDate\"-\n" +
	"\x17ExportContractsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\"2\n" +
	"\x17DownloadContractRequest\x12\x17\n" +
	"\afile_id\x18\x01 \x01(\tR\x06fileId\"k\n" +
	"\x18DownloadContractResponse\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12\x19\n" +
	"\bfile_ext\x18\x02 \x01(\tR\afileExt\x12\x18\n" +
	"\acontent\x18\x03 \x01(\fR\acontent2\x94\x02\n" +
	"\x10IngestionService\x12S\n" +
	"\x0eUploadContract\x12#.contracts.v1.UploadContractRequest\x1a\x1c.contracts.v1.IngestResponse\x12K\n" +
	"\n" +
	"IngestFile\x12\x1f.contracts.v1.IngestFileRequest\x1a\x1c.contracts.v1.IngestResponse\x12^\n" +
	"\x0fIngestDirectory\x12$.contracts.v1.IngestDirectoryRequest\x1a%.contracts.v1.IngestDirectoryResponse2\xf5\x03\n" +
	"\x10ContractsService\x12d\n" +
	"\x11GetContractStatus\x12&.contracts.v1.GetContractStatusRequest\x1a'.contracts.v1.GetContractStatusResponse\x12^\n" +
	"\x0fGetContractData\x12$.contracts.v1.GetContractDataRequest\x1a%.contracts.v1.GetContractDataResponse\x12X\n" +
	"\rListContracts\x12\".contracts.v1.ListContractsRequest\x1a#.contracts.v1.ListContractsResponse\x12^\n" +
	"\x0fExportContracts\x12$.contracts.v1.ExportContractsRequest\x1a%.contracts.v1.ExportContractsResponse\x12a\n" +
	"\x10DownloadContract\x12%.contracts.v1.DownloadContractRequest\x1a&.contracts.v1.DownloadContractResponseBMZKgithub.com/joseph-ayodele/contract-intel/gen/proto/contracts/v1;contractsv1b\x06proto3"

var (
	file_contracts_v1_contracts_proto_rawDescOnce sync.Once
	file_contracts_v1_contracts_proto_rawDescData []byte
)

func file_contracts_v1_contracts_proto_rawDescGZIP() []byte {
	file_contracts_v1_contracts_proto_rawDescOnce.Do(func() {
		file_contracts_v1_contracts_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_contracts_v1_contracts_proto_rawDesc), len(file_contracts_v1_contracts_proto_rawDesc)))
	})
	return file_contracts_v1_contracts_proto_rawDescData
}

var file_contracts_v1_contracts_proto_msgTypes = make([]protoimpl.MessageInfo, 16)
var file_contracts_v1_contracts_proto_goTypes = []any{
	(*UploadContractRequest)(nil),     // 0: contracts.v1.UploadContractRequest
	(*IngestFileRequest)(nil),         // 1: contracts.v1.IngestFileRequest
	(*IngestDirectoryRequest)(nil),    // 2: contracts.v1.IngestDirectoryRequest
	(*IngestResponse)(nil),            // 3: contracts.v1.IngestResponse
	(*IngestDirectoryResponse)(nil),   // 4: contracts.v1.IngestDirectoryResponse
	(*GetContractStatusRequest)(nil),  // 5: contracts.v1.GetContractStatusRequest
	(*GetContractStatusResponse)(nil), // 6: contracts.v1.GetContractStatusResponse
	(*GetContractDataRequest)(nil),    // 7: contracts.v1.GetContractDataRequest
	(*GetContractDataResponse)(nil),   // 8: contracts.v1.GetContractDataResponse
	(*JobSummary)(nil),                // 9: contracts.v1.JobSummary
	(*ListContractsRequest)(nil),      // 10: contracts.v1.ListContractsRequest
	(*ListContractsResponse)(nil),     // 11: contracts.v1.ListContractsResponse
	(*ExportContractsRequest)(nil),    // 12: contracts.v1.ExportContractsRequest
	(*ExportContractsResponse)(nil),   // 13: contracts.v1.ExportContractsResponse
	(*DownloadContractRequest)(nil),   // 14: contracts.v1.DownloadContractRequest
	(*DownloadContractResponse)(nil),  // 15: contracts.v1.DownloadContractResponse
}
var file_contracts_v1_contracts_proto_depIdxs = []int32{
	3,  // 0: contracts.v1.IngestDirectoryResponse.results:type_name -> contracts.v1.IngestResponse
	9,  // 1: contracts.v1.ListContractsResponse.jobs:type_name -> contracts.v1.JobSummary
	0,  // 2: contracts.v1.IngestionService.UploadContract:input_type -> contracts.v1.UploadContractRequest
	1,  // 3: contracts.v1.IngestionService.IngestFile:input_type -> contracts.v1.IngestFileRequest
	2,  // 4: contracts.v1.IngestionService.IngestDirectory:input_type -> contracts.v1.IngestDirectoryRequest
	5,  // 5: contracts.v1.ContractsService.GetContractStatus:input_type -> contracts.v1.GetContractStatusRequest
	7,  // 6: contracts.v1.ContractsService.GetContractData:input_type -> contracts.v1.GetContractDataRequest
	10, // 7: contracts.v1.ContractsService.ListContracts:input_type -> contracts.v1.ListContractsRequest
	12, // 8: contracts.v1.ContractsService.ExportContracts:input_type -> contracts.v1.ExportContractsRequest
	14, // 9: contracts.v1.ContractsService.DownloadContract:input_type -> contracts.v1.DownloadContractRequest
	3,  // 10: contracts.v1.IngestionService.UploadContract:output_type -> contracts.v1.IngestResponse
	3,  // 11: contracts.v1.IngestionService.IngestFile:output_type -> contracts.v1.IngestResponse
	4,  // 12: contracts.v1.IngestionService.IngestDirectory:output_type -> contracts.v1.IngestDirectoryResponse
	6,  // 13: contracts.v1.ContractsService.GetContractStatus:output_type -> contracts.v1.GetContractStatusResponse
	8,  // 14: contracts.v1.ContractsService.GetContractData:output_type -> contracts.v1.GetContractDataResponse
	11, // 15: contracts.v1.ContractsService.ListContracts:output_type -> contracts.v1.ListContractsResponse
	13, // 16: contracts.v1.ContractsService.ExportContracts:output_type -> contracts.v1.ExportContractsResponse
	15, // 17: contracts.v1.ContractsService.DownloadContract:output_type -> contracts.v1.DownloadContractResponse
	10, // [10:18] is the sub-list for method output_type
	2,  // [2:10] is the sub-list for method input_type
	2,  // [2:2] is the sub-list for extension type_name
	2,  // [2:2] is the sub-list for extension extendee
	0,  // [0:2] is the sub-list for field type_name
}

func init() { file_contracts_v1_contracts_proto_init() }
func file_contracts_v1_contracts_proto_init() {
	if File_contracts_v1_contracts_proto != nil {
		return
	}
	file_contracts_v1_contracts_proto_msgTypes[2].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_contracts_v1_contracts_proto_rawDesc), len(file_contracts_v1_contracts_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   16,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_contracts_v1_contracts_proto_goTypes,
		DependencyIndexes: file_contracts_v1_contracts_proto_depIdxs,
		MessageInfos:      file_contracts_v1_contracts_proto_msgTypes,
	}.Build()
	File_contracts_v1_contracts_proto = out.File
	file_contracts_v1_contracts_proto_goTypes = nil
	file_contracts_v1_contracts_proto_depIdxs = nil
}

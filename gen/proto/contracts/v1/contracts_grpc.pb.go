// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: contracts/v1/contracts.proto

package contractsv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	IngestionService_UploadContract_FullMethodName  = "/contracts.v1.IngestionService/UploadContract"
	IngestionService_IngestFile_FullMethodName      = "/contracts.v1.IngestionService/IngestFile"
	IngestionService_IngestDirectory_FullMethodName = "/contracts.v1.IngestionService/IngestDirectory"
)

// IngestionServiceClient is the client API for IngestionService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// IngestionService accepts contract documents and queues them for parsing.
type IngestionServiceClient interface {
	// UploadContract stores raw document bytes and enqueues processing.
	UploadContract(ctx context.Context, in *UploadContractRequest, opts ...grpc.CallOption) (*IngestResponse, error)
	// IngestFile registers a document already on the server filesystem.
	IngestFile(ctx context.Context, in *IngestFileRequest, opts ...grpc.CallOption) (*IngestResponse, error)
	// IngestDirectory walks a directory and registers every matching document.
	IngestDirectory(ctx context.Context, in *IngestDirectoryRequest, opts ...grpc.CallOption) (*IngestDirectoryResponse, error)
}

type ingestionServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewIngestionServiceClient(cc grpc.ClientConnInterface) IngestionServiceClient {
	return &ingestionServiceClient{cc}
}

func (c *ingestionServiceClient) UploadContract(ctx context.Context, in *UploadContractRequest, opts ...grpc.CallOption) (*IngestResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(IngestResponse)
	err := c.cc.Invoke(ctx, IngestionService_UploadContract_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ingestionServiceClient) IngestFile(ctx context.Context, in *IngestFileRequest, opts ...grpc.CallOption) (*IngestResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(IngestResponse)
	err := c.cc.Invoke(ctx, IngestionService_IngestFile_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ingestionServiceClient) IngestDirectory(ctx context.Context, in *IngestDirectoryRequest, opts ...grpc.CallOption) (*IngestDirectoryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(IngestDirectoryResponse)
	err := c.cc.Invoke(ctx, IngestionService_IngestDirectory_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// IngestionServiceServer is the server API for IngestionService service.
// All implementations must embed UnimplementedIngestionServiceServer
// for forward compatibility.
//
// IngestionService accepts contract documents and queues them for parsing.
type IngestionServiceServer interface {
	// UploadContract stores raw document bytes and enqueues processing.
	UploadContract(context.Context, *UploadContractRequest) (*IngestResponse, error)
	// IngestFile registers a document already on the server filesystem.
	IngestFile(context.Context, *IngestFileRequest) (*IngestResponse, error)
	// IngestDirectory walks a directory and registers every matching document.
	IngestDirectory(context.Context, *IngestDirectoryRequest) (*IngestDirectoryResponse, error)
	mustEmbedUnimplementedIngestionServiceServer()
}

// UnimplementedIngestionServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedIngestionServiceServer struct{}

func (UnimplementedIngestionServiceServer) UploadContract(context.Context, *UploadContractRequest) (*IngestResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UploadContract not implemented")
}
func (UnimplementedIngestionServiceServer) IngestFile(context.Context, *IngestFileRequest) (*IngestResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method IngestFile not implemented")
}
func (UnimplementedIngestionServiceServer) IngestDirectory(context.Context, *IngestDirectoryRequest) (*IngestDirectoryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method IngestDirectory not implemented")
}
func (UnimplementedIngestionServiceServer) mustEmbedUnimplementedIngestionServiceServer() {}
func (UnimplementedIngestionServiceServer) testEmbeddedByValue()                          {}

// UnsafeIngestionServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to IngestionServiceServer will
// result in compilation errors.
type UnsafeIngestionServiceServer interface {
	mustEmbedUnimplementedIngestionServiceServer()
}

func RegisterIngestionServiceServer(s grpc.ServiceRegistrar, srv IngestionServiceServer) {
	// If the following call panics, it indicates UnimplementedIngestionServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&IngestionService_ServiceDesc, srv)
}

func _IngestionService_UploadContract_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UploadContractRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IngestionServiceServer).UploadContract(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: IngestionService_UploadContract_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IngestionServiceServer).UploadContract(ctx, req.(*UploadContractRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _IngestionService_IngestFile_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(IngestFileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IngestionServiceServer).IngestFile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: IngestionService_IngestFile_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IngestionServiceServer).IngestFile(ctx, req.(*IngestFileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _IngestionService_IngestDirectory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(IngestDirectoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IngestionServiceServer).IngestDirectory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: IngestionService_IngestDirectory_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IngestionServiceServer).IngestDirectory(ctx, req.(*IngestDirectoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// IngestionService_ServiceDesc is the grpc.ServiceDesc for IngestionService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var IngestionService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "contracts.v1.IngestionService",
	HandlerType: (*IngestionServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "UploadContract",
			Handler:    _IngestionService_UploadContract_Handler,
		},
		{
			MethodName: "IngestFile",
			Handler:    _IngestionService_IngestFile_Handler,
		},
		{
			MethodName: "IngestDirectory",
			Handler:    _IngestionService_IngestDirectory_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "contracts/v1/contracts.proto",
}

const (
	ContractsService_GetContractStatus_FullMethodName = "/contracts.v1.ContractsService/GetContractStatus"
	ContractsService_GetContractData_FullMethodName   = "/contracts.v1.ContractsService/GetContractData"
	ContractsService_ListContracts_FullMethodName     = "/contracts.v1.ContractsService/ListContracts"
	ContractsService_ExportContracts_FullMethodName   = "/contracts.v1.ContractsService/ExportContracts"
	ContractsService_DownloadContract_FullMethodName  = "/contracts.v1.ContractsService/DownloadContract"
)

// ContractsServiceClient is the client API for ContractsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ContractsService exposes parsing results.
type ContractsServiceClient interface {
	// GetContractStatus reports the latest job state for a file.
	GetContractStatus(ctx context.Context, in *GetContractStatusRequest, opts ...grpc.CallOption) (*GetContractStatusResponse, error)
	// GetContractData returns the extracted JSON for a completed file.
	GetContractData(ctx context.Context, in *GetContractDataRequest, opts ...grpc.CallOption) (*GetContractDataResponse, error)
	// ListContracts pages through jobs, optionally filtered by status.
	ListContracts(ctx context.Context, in *ListContractsRequest, opts ...grpc.CallOption) (*ListContractsResponse, error)
	// ExportContracts renders parsed contract summaries as an XLSX workbook.
	ExportContracts(ctx context.Context, in *ExportContractsRequest, opts ...grpc.CallOption) (*ExportContractsResponse, error)
	// DownloadContract returns the stored document bytes for a file.
	DownloadContract(ctx context.Context, in *DownloadContractRequest, opts ...grpc.CallOption) (*DownloadContractResponse, error)
}

type contractsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewContractsServiceClient(cc grpc.ClientConnInterface) ContractsServiceClient {
	return &contractsServiceClient{cc}
}

func (c *contractsServiceClient) GetContractStatus(ctx context.Context, in *GetContractStatusRequest, opts ...grpc.CallOption) (*GetContractStatusResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetContractStatusResponse)
	err := c.cc.Invoke(ctx, ContractsService_GetContractStatus_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *contractsServiceClient) GetContractData(ctx context.Context, in *GetContractDataRequest, opts ...grpc.CallOption) (*GetContractDataResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetContractDataResponse)
	err := c.cc.Invoke(ctx, ContractsService_GetContractData_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *contractsServiceClient) ListContracts(ctx context.Context, in *ListContractsRequest, opts ...grpc.CallOption) (*ListContractsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListContractsResponse)
	err := c.cc.Invoke(ctx, ContractsService_ListContracts_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *contractsServiceClient) ExportContracts(ctx context.Context, in *ExportContractsRequest, opts ...grpc.CallOption) (*ExportContractsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportContractsResponse)
	err := c.cc.Invoke(ctx, ContractsService_ExportContracts_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *contractsServiceClient) DownloadContract(ctx context.Context, in *DownloadContractRequest, opts ...grpc.CallOption) (*DownloadContractResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DownloadContractResponse)
	err := c.cc.Invoke(ctx, ContractsService_DownloadContract_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ContractsServiceServer is the server API for ContractsService service.
// All implementations must embed UnimplementedContractsServiceServer
// for forward compatibility.
//
// ContractsService exposes parsing results.
type ContractsServiceServer interface {
	// GetContractStatus reports the latest job state for a file.
	GetContractStatus(context.Context, *GetContractStatusRequest) (*GetContractStatusResponse, error)
	// GetContractData returns the extracted JSON for a completed file.
	GetContractData(context.Context, *GetContractDataRequest) (*GetContractDataResponse, error)
	// ListContracts pages through jobs, optionally filtered by status.
	ListContracts(context.Context, *ListContractsRequest) (*ListContractsResponse, error)
	// ExportContracts renders parsed contract summaries as an XLSX workbook.
	ExportContracts(context.Context, *ExportContractsRequest) (*ExportContractsResponse, error)
	// DownloadContract returns the stored document bytes for a file.
	DownloadContract(context.Context, *DownloadContractRequest) (*DownloadContractResponse, error)
	mustEmbedUnimplementedContractsServiceServer()
}

// UnimplementedContractsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedContractsServiceServer struct{}

func (UnimplementedContractsServiceServer) GetContractStatus(context.Context, *GetContractStatusRequest) (*GetContractStatusResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetContractStatus not implemented")
}
func (UnimplementedContractsServiceServer) GetContractData(context.Context, *GetContractDataRequest) (*GetContractDataResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetContractData not implemented")
}
func (UnimplementedContractsServiceServer) ListContracts(context.Context, *ListContractsRequest) (*ListContractsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListContracts not implemented")
}
func (UnimplementedContractsServiceServer) ExportContracts(context.Context, *ExportContractsRequest) (*ExportContractsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExportContracts not implemented")
}
func (UnimplementedContractsServiceServer) DownloadContract(context.Context, *DownloadContractRequest) (*DownloadContractResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DownloadContract not implemented")
}
func (UnimplementedContractsServiceServer) mustEmbedUnimplementedContractsServiceServer() {}
func (UnimplementedContractsServiceServer) testEmbeddedByValue()                          {}

// UnsafeContractsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ContractsServiceServer will
// result in compilation errors.
type UnsafeContractsServiceServer interface {
	mustEmbedUnimplementedContractsServiceServer()
}

func RegisterContractsServiceServer(s grpc.ServiceRegistrar, srv ContractsServiceServer) {
	// If the following call panics, it indicates UnimplementedContractsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ContractsService_ServiceDesc, srv)
}

func _ContractsService_GetContractStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetContractStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ContractsServiceServer).GetContractStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ContractsService_GetContractStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ContractsServiceServer).GetContractStatus(ctx, req.(*GetContractStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ContractsService_GetContractData_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetContractDataRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ContractsServiceServer).GetContractData(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ContractsService_GetContractData_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ContractsServiceServer).GetContractData(ctx, req.(*GetContractDataRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ContractsService_ListContracts_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListContractsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ContractsServiceServer).ListContracts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ContractsService_ListContracts_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ContractsServiceServer).ListContracts(ctx, req.(*ListContractsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ContractsService_ExportContracts_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportContractsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ContractsServiceServer).ExportContracts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ContractsService_ExportContracts_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ContractsServiceServer).ExportContracts(ctx, req.(*ExportContractsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ContractsService_DownloadContract_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DownloadContractRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ContractsServiceServer).DownloadContract(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ContractsService_DownloadContract_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ContractsServiceServer).DownloadContract(ctx, req.(*DownloadContractRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ContractsService_ServiceDesc is the grpc.ServiceDesc for ContractsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ContractsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "contracts.v1.ContractsService",
	HandlerType: (*ContractsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetContractStatus",
			Handler:    _ContractsService_GetContractStatus_Handler,
		},
		{
			MethodName: "GetContractData",
			Handler:    _ContractsService_GetContractData_Handler,
		},
		{
			MethodName: "ListContracts",
			Handler:    _ContractsService_ListContracts_Handler,
		},
		{
			MethodName: "ExportContracts",
			Handler:    _ContractsService_ExportContracts_Handler,
		},
		{
			MethodName: "DownloadContract",
			Handler:    _ContractsService_DownloadContract_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "contracts/v1/contracts.proto",
}

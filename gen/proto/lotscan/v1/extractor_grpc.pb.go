// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: lotscan/v1/extractor.proto

package lotscanv1

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
	ExtractorService_Extract_FullMethodName         = "/lotscan.v1.ExtractorService/Extract"
	ExtractorService_RecommendCarton_FullMethodName = "/lotscan.v1.ExtractorService/RecommendCarton"
	ExtractorService_ExportResults_FullMethodName   = "/lotscan.v1.ExtractorService/ExportResults"
)

// ExtractorServiceClient is the client API for ExtractorService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ExtractorService is the surface the surrounding HTTP layer consumes:
// document in, structured bordereau out, plus carton recommendation and
// XLSX export for batches.
type ExtractorServiceClient interface {
	Extract(ctx context.Context, in *ExtractRequest, opts ...grpc.CallOption) (*ExtractResponse, error)
	RecommendCarton(ctx context.Context, in *RecommendCartonRequest, opts ...grpc.CallOption) (*RecommendCartonResponse, error)
	ExportResults(ctx context.Context, in *ExportResultsRequest, opts ...grpc.CallOption) (*ExportResultsResponse, error)
}

type extractorServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewExtractorServiceClient(cc grpc.ClientConnInterface) ExtractorServiceClient {
	return &extractorServiceClient{cc}
}

func (c *extractorServiceClient) Extract(ctx context.Context, in *ExtractRequest, opts ...grpc.CallOption) (*ExtractResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExtractResponse)
	err := c.cc.Invoke(ctx, ExtractorService_Extract_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractorServiceClient) RecommendCarton(ctx context.Context, in *RecommendCartonRequest, opts ...grpc.CallOption) (*RecommendCartonResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RecommendCartonResponse)
	err := c.cc.Invoke(ctx, ExtractorService_RecommendCarton_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractorServiceClient) ExportResults(ctx context.Context, in *ExportResultsRequest, opts ...grpc.CallOption) (*ExportResultsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportResultsResponse)
	err := c.cc.Invoke(ctx, ExtractorService_ExportResults_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ExtractorServiceServer is the server API for ExtractorService service.
// All implementations must embed UnimplementedExtractorServiceServer
// for forward compatibility.
//
// ExtractorService is the surface the surrounding HTTP layer consumes:
// document in, structured bordereau out, plus carton recommendation and
// XLSX export for batches.
type ExtractorServiceServer interface {
	Extract(context.Context, *ExtractRequest) (*ExtractResponse, error)
	RecommendCarton(context.Context, *RecommendCartonRequest) (*RecommendCartonResponse, error)
	ExportResults(context.Context, *ExportResultsRequest) (*ExportResultsResponse, error)
	mustEmbedUnimplementedExtractorServiceServer()
}

// UnimplementedExtractorServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedExtractorServiceServer struct{}

func (UnimplementedExtractorServiceServer) Extract(context.Context, *ExtractRequest) (*ExtractResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Extract not implemented")
}
func (UnimplementedExtractorServiceServer) RecommendCarton(context.Context, *RecommendCartonRequest) (*RecommendCartonResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RecommendCarton not implemented")
}
func (UnimplementedExtractorServiceServer) ExportResults(context.Context, *ExportResultsRequest) (*ExportResultsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportResults not implemented")
}
func (UnimplementedExtractorServiceServer) mustEmbedUnimplementedExtractorServiceServer() {}
func (UnimplementedExtractorServiceServer) testEmbeddedByValue()                          {}

// UnsafeExtractorServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ExtractorServiceServer will
// result in compilation errors.
type UnsafeExtractorServiceServer interface {
	mustEmbedUnimplementedExtractorServiceServer()
}

func RegisterExtractorServiceServer(s grpc.ServiceRegistrar, srv ExtractorServiceServer) {
	// If the following call pancis, it indicates UnimplementedExtractorServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ExtractorService_ServiceDesc, srv)
}

func _ExtractorService_Extract_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExtractRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractorServiceServer).Extract(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractorService_Extract_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractorServiceServer).Extract(ctx, req.(*ExtractRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractorService_RecommendCarton_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RecommendCartonRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractorServiceServer).RecommendCarton(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractorService_RecommendCarton_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractorServiceServer).RecommendCarton(ctx, req.(*RecommendCartonRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractorService_ExportResults_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportResultsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractorServiceServer).ExportResults(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractorService_ExportResults_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractorServiceServer).ExportResults(ctx, req.(*ExportResultsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ExtractorService_ServiceDesc is the grpc.ServiceDesc for ExtractorService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ExtractorService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "lotscan.v1.ExtractorService",
	HandlerType: (*ExtractorServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Extract",
			Handler:    _ExtractorService_Extract_Handler,
		},
		{
			MethodName: "RecommendCarton",
			Handler:    _ExtractorService_RecommendCarton_Handler,
		},
		{
			MethodName: "ExportResults",
			Handler:    _ExtractorService_ExportResults_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "lotscan/v1/extractor.proto",
}

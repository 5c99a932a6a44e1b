package grpc

// proto.go defines the gRPC server interface derived from microlend/console/v1/console.proto.
// This file serves as a stand-in for buf-generated code. Once `buf generate` is run,
// replace this file with the import from github.com/microlend/lending-console/api/gen/go/microlend/console/v1.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ConsoleServiceServer is the server API for ConsoleService.
// It mirrors the proto-generated interface from microlend.console.v1.ConsoleService.
type ConsoleServiceServer interface {
	VerifyIdentity(context.Context, *VerifyIdentityRequest) (*VerifyIdentityResponse, error)
	CompleteBasicInfo(context.Context, *CompleteBasicInfoRequest) (*WizardStateResponse, error)
	CompleteContactInfo(context.Context, *CompleteContactInfoRequest) (*WizardStateResponse, error)
	ComputeEligibility(context.Context, *ComputeEligibilityRequest) (*EligibilityResponse, error)
	SubmitApplication(context.Context, *SubmitApplicationRequest) (*RecordMessage, error)
	NavigateBack(context.Context, *NavigateBackRequest) (*WizardStateResponse, error)
	ResumeWizard(context.Context, *ResumeWizardRequest) (*ResumeWizardResponse, error)
	DiscardDraft(context.Context, *DiscardDraftRequest) (*DiscardDraftResponse, error)
	AcknowledgeSuccess(context.Context, *AcknowledgeSuccessRequest) (*AcknowledgeSuccessResponse, error)
	ReviewerAct(context.Context, *ReviewerActRequest) (*ReviewerActResponse, error)
	CompleteReviewerApproval(context.Context, *CompleteReviewerApprovalRequest) (*RecordMessage, error)
	AuthorizerAct(context.Context, *AuthorizerActRequest) (*RecordMessage, error)
	EditRejected(context.Context, *EditRejectedRequest) (*RecordMessage, error)
	GetRecord(context.Context, *GetRecordRequest) (*RecordMessage, error)
	ListRecordsByStage(context.Context, *ListRecordsByStageRequest) (*ListRecordsByStageResponse, error)
	mustEmbedUnimplementedConsoleServiceServer()
}

// UnimplementedConsoleServiceServer provides forward-compatible default implementations.
type UnimplementedConsoleServiceServer struct{}

func (UnimplementedConsoleServiceServer) VerifyIdentity(context.Context, *VerifyIdentityRequest) (*VerifyIdentityResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method VerifyIdentity not implemented")
}
func (UnimplementedConsoleServiceServer) CompleteBasicInfo(context.Context, *CompleteBasicInfoRequest) (*WizardStateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CompleteBasicInfo not implemented")
}
func (UnimplementedConsoleServiceServer) CompleteContactInfo(context.Context, *CompleteContactInfoRequest) (*WizardStateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CompleteContactInfo not implemented")
}
func (UnimplementedConsoleServiceServer) ComputeEligibility(context.Context, *ComputeEligibilityRequest) (*EligibilityResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ComputeEligibility not implemented")
}
func (UnimplementedConsoleServiceServer) SubmitApplication(context.Context, *SubmitApplicationRequest) (*RecordMessage, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitApplication not implemented")
}
func (UnimplementedConsoleServiceServer) NavigateBack(context.Context, *NavigateBackRequest) (*WizardStateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method NavigateBack not implemented")
}
func (UnimplementedConsoleServiceServer) ResumeWizard(context.Context, *ResumeWizardRequest) (*ResumeWizardResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ResumeWizard not implemented")
}
func (UnimplementedConsoleServiceServer) DiscardDraft(context.Context, *DiscardDraftRequest) (*DiscardDraftResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DiscardDraft not implemented")
}
func (UnimplementedConsoleServiceServer) AcknowledgeSuccess(context.Context, *AcknowledgeSuccessRequest) (*AcknowledgeSuccessResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AcknowledgeSuccess not implemented")
}
func (UnimplementedConsoleServiceServer) ReviewerAct(context.Context, *ReviewerActRequest) (*ReviewerActResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ReviewerAct not implemented")
}
func (UnimplementedConsoleServiceServer) CompleteReviewerApproval(context.Context, *CompleteReviewerApprovalRequest) (*RecordMessage, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CompleteReviewerApproval not implemented")
}
func (UnimplementedConsoleServiceServer) AuthorizerAct(context.Context, *AuthorizerActRequest) (*RecordMessage, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AuthorizerAct not implemented")
}
func (UnimplementedConsoleServiceServer) EditRejected(context.Context, *EditRejectedRequest) (*RecordMessage, error) {
	return nil, status.Errorf(codes.Unimplemented, "method EditRejected not implemented")
}
func (UnimplementedConsoleServiceServer) GetRecord(context.Context, *GetRecordRequest) (*RecordMessage, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetRecord not implemented")
}
func (UnimplementedConsoleServiceServer) ListRecordsByStage(context.Context, *ListRecordsByStageRequest) (*ListRecordsByStageResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListRecordsByStage not implemented")
}
func (UnimplementedConsoleServiceServer) mustEmbedUnimplementedConsoleServiceServer() {}

// RegisterConsoleServiceServer registers the ConsoleServiceServer with the gRPC server.
func RegisterConsoleServiceServer(s *grpclib.Server, srv ConsoleServiceServer) {
	s.RegisterService(&_ConsoleService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _ConsoleService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "microlend.console.v1.ConsoleService",
	HandlerType: (*ConsoleServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "VerifyIdentity", Handler: _ConsoleService_VerifyIdentity_Handler},                     //nolint:revive // gRPC handler registration
		{MethodName: "CompleteBasicInfo", Handler: _ConsoleService_CompleteBasicInfo_Handler},               //nolint:revive // gRPC handler registration
		{MethodName: "CompleteContactInfo", Handler: _ConsoleService_CompleteContactInfo_Handler},           //nolint:revive // gRPC handler registration
		{MethodName: "ComputeEligibility", Handler: _ConsoleService_ComputeEligibility_Handler},             //nolint:revive // gRPC handler registration
		{MethodName: "SubmitApplication", Handler: _ConsoleService_SubmitApplication_Handler},               //nolint:revive // gRPC handler registration
		{MethodName: "NavigateBack", Handler: _ConsoleService_NavigateBack_Handler},                         //nolint:revive // gRPC handler registration
		{MethodName: "ResumeWizard", Handler: _ConsoleService_ResumeWizard_Handler},                         //nolint:revive // gRPC handler registration
		{MethodName: "DiscardDraft", Handler: _ConsoleService_DiscardDraft_Handler},                         //nolint:revive // gRPC handler registration
		{MethodName: "AcknowledgeSuccess", Handler: _ConsoleService_AcknowledgeSuccess_Handler},             //nolint:revive // gRPC handler registration
		{MethodName: "ReviewerAct", Handler: _ConsoleService_ReviewerAct_Handler},                           //nolint:revive // gRPC handler registration
		{MethodName: "CompleteReviewerApproval", Handler: _ConsoleService_CompleteReviewerApproval_Handler}, //nolint:revive // gRPC handler registration
		{MethodName: "AuthorizerAct", Handler: _ConsoleService_AuthorizerAct_Handler},                       //nolint:revive // gRPC handler registration
		{MethodName: "EditRejected", Handler: _ConsoleService_EditRejected_Handler},                         //nolint:revive // gRPC handler registration
		{MethodName: "GetRecord", Handler: _ConsoleService_GetRecord_Handler},                               //nolint:revive // gRPC handler registration
		{MethodName: "ListRecordsByStage", Handler: _ConsoleService_ListRecordsByStage_Handler},             //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _ConsoleService_VerifyIdentity_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(VerifyIdentityRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ConsoleServiceServer).VerifyIdentity(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/microlend.console.v1.ConsoleService/VerifyIdentity",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ConsoleServiceServer).VerifyIdentity(ctx, req.(*VerifyIdentityRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _ConsoleService_CompleteBasicInfo_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(CompleteBasicInfoRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ConsoleServiceServer).CompleteBasicInfo(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/microlend.console.v1.ConsoleService/CompleteBasicInfo",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ConsoleServiceServer).CompleteBasicInfo(ctx, req.(*CompleteBasicInfoRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _ConsoleService_CompleteContactInfo_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(CompleteContactInfoRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ConsoleServiceServer).CompleteContactInfo(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/microlend.console.v1.ConsoleService/CompleteContactInfo",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ConsoleServiceServer).CompleteContactInfo(ctx, req.(*CompleteContactInfoRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _ConsoleService_ComputeEligibility_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ComputeEligibilityRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ConsoleServiceServer).ComputeEligibility(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/microlend.console.v1.ConsoleService/ComputeEligibility",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ConsoleServiceServer).ComputeEligibility(ctx, req.(*ComputeEligibilityRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _ConsoleService_SubmitApplication_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitApplicationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ConsoleServiceServer).SubmitApplication(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/microlend.console.v1.ConsoleService/SubmitApplication",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ConsoleServiceServer).SubmitApplication(ctx, req.(*SubmitApplicationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _ConsoleService_NavigateBack_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(NavigateBackRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ConsoleServiceServer).NavigateBack(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/microlend.console.v1.ConsoleService/NavigateBack",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ConsoleServiceServer).NavigateBack(ctx, req.(*NavigateBackRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _ConsoleService_ResumeWizard_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ResumeWizardRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ConsoleServiceServer).ResumeWizard(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/microlend.console.v1.ConsoleService/ResumeWizard",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ConsoleServiceServer).ResumeWizard(ctx, req.(*ResumeWizardRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _ConsoleService_DiscardDraft_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(DiscardDraftRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ConsoleServiceServer).DiscardDraft(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/microlend.console.v1.ConsoleService/DiscardDraft",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ConsoleServiceServer).DiscardDraft(ctx, req.(*DiscardDraftRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _ConsoleService_AcknowledgeSuccess_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(AcknowledgeSuccessRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ConsoleServiceServer).AcknowledgeSuccess(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/microlend.console.v1.ConsoleService/AcknowledgeSuccess",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ConsoleServiceServer).AcknowledgeSuccess(ctx, req.(*AcknowledgeSuccessRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _ConsoleService_ReviewerAct_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReviewerActRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ConsoleServiceServer).ReviewerAct(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/microlend.console.v1.ConsoleService/ReviewerAct",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ConsoleServiceServer).ReviewerAct(ctx, req.(*ReviewerActRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _ConsoleService_CompleteReviewerApproval_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(CompleteReviewerApprovalRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ConsoleServiceServer).CompleteReviewerApproval(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/microlend.console.v1.ConsoleService/CompleteReviewerApproval",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ConsoleServiceServer).CompleteReviewerApproval(ctx, req.(*CompleteReviewerApprovalRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _ConsoleService_AuthorizerAct_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(AuthorizerActRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ConsoleServiceServer).AuthorizerAct(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/microlend.console.v1.ConsoleService/AuthorizerAct",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ConsoleServiceServer).AuthorizerAct(ctx, req.(*AuthorizerActRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _ConsoleService_EditRejected_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(EditRejectedRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ConsoleServiceServer).EditRejected(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/microlend.console.v1.ConsoleService/EditRejected",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ConsoleServiceServer).EditRejected(ctx, req.(*EditRejectedRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _ConsoleService_GetRecord_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetRecordRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ConsoleServiceServer).GetRecord(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/microlend.console.v1.ConsoleService/GetRecord",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ConsoleServiceServer).GetRecord(ctx, req.(*GetRecordRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _ConsoleService_ListRecordsByStage_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListRecordsByStageRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ConsoleServiceServer).ListRecordsByStage(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/microlend.console.v1.ConsoleService/ListRecordsByStage",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ConsoleServiceServer).ListRecordsByStage(ctx, req.(*ListRecordsByStageRequest))
	}
	return interceptor(ctx, in, info, handler)
}

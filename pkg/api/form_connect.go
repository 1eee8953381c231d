package api

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// FormServiceName is the fully-qualified name of the FormService service.
const FormServiceName = "billsplit.v1.FormService"

// Procedure paths of FormService.
const (
	FormServiceGetFormProcedure      = "/billsplit.v1.FormService/GetForm"
	FormServiceAddRecordProcedure    = "/billsplit.v1.FormService/AddRecord"
	FormServiceUpdateRecordProcedure = "/billsplit.v1.FormService/UpdateRecord"
	FormServiceToggleRecordProcedure = "/billsplit.v1.FormService/ToggleRecord"
	FormServiceRemoveRecordProcedure = "/billsplit.v1.FormService/RemoveRecord"
	FormServiceCalculateProcedure    = "/billsplit.v1.FormService/Calculate"
	FormServiceResetFormProcedure    = "/billsplit.v1.FormService/ResetForm"
)

// FormServiceHandler is implemented by the server side of FormService.
type FormServiceHandler interface {
	GetForm(context.Context, *connect.Request[GetFormRequest]) (*connect.Response[FormResponse], error)
	AddRecord(context.Context, *connect.Request[AddRecordRequest]) (*connect.Response[FormResponse], error)
	UpdateRecord(context.Context, *connect.Request[UpdateRecordRequest]) (*connect.Response[FormResponse], error)
	ToggleRecord(context.Context, *connect.Request[ToggleRecordRequest]) (*connect.Response[FormResponse], error)
	RemoveRecord(context.Context, *connect.Request[RemoveRecordRequest]) (*connect.Response[FormResponse], error)
	Calculate(context.Context, *connect.Request[CalculateRequest]) (*connect.Response[CalculateResponse], error)
	ResetForm(context.Context, *connect.Request[ResetFormRequest]) (*connect.Response[FormResponse], error)
}

// NewFormServiceHandler builds an HTTP handler for svc. It returns the path
// prefix to mount the handler on.
func NewFormServiceHandler(svc FormServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append(opts, connect.WithCodec(Codec{}))
	routes := map[string]http.Handler{
		FormServiceGetFormProcedure:      connect.NewUnaryHandler(FormServiceGetFormProcedure, svc.GetForm, opts...),
		FormServiceAddRecordProcedure:    connect.NewUnaryHandler(FormServiceAddRecordProcedure, svc.AddRecord, opts...),
		FormServiceUpdateRecordProcedure: connect.NewUnaryHandler(FormServiceUpdateRecordProcedure, svc.UpdateRecord, opts...),
		FormServiceToggleRecordProcedure: connect.NewUnaryHandler(FormServiceToggleRecordProcedure, svc.ToggleRecord, opts...),
		FormServiceRemoveRecordProcedure: connect.NewUnaryHandler(FormServiceRemoveRecordProcedure, svc.RemoveRecord, opts...),
		FormServiceCalculateProcedure:    connect.NewUnaryHandler(FormServiceCalculateProcedure, svc.Calculate, opts...),
		FormServiceResetFormProcedure:    connect.NewUnaryHandler(FormServiceResetFormProcedure, svc.ResetForm, opts...),
	}
	return "/" + FormServiceName + "/", route(routes)
}

// FormServiceClient is a client for FormService.
type FormServiceClient interface {
	GetForm(context.Context, *connect.Request[GetFormRequest]) (*connect.Response[FormResponse], error)
	AddRecord(context.Context, *connect.Request[AddRecordRequest]) (*connect.Response[FormResponse], error)
	UpdateRecord(context.Context, *connect.Request[UpdateRecordRequest]) (*connect.Response[FormResponse], error)
	ToggleRecord(context.Context, *connect.Request[ToggleRecordRequest]) (*connect.Response[FormResponse], error)
	RemoveRecord(context.Context, *connect.Request[RemoveRecordRequest]) (*connect.Response[FormResponse], error)
	Calculate(context.Context, *connect.Request[CalculateRequest]) (*connect.Response[CalculateResponse], error)
	ResetForm(context.Context, *connect.Request[ResetFormRequest]) (*connect.Response[FormResponse], error)
}

// NewFormServiceClient creates a FormService client for the server at baseURL.
func NewFormServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) FormServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append(opts, connect.WithCodec(Codec{}))
	return &formServiceClient{
		getForm:      connect.NewClient[GetFormRequest, FormResponse](httpClient, baseURL+FormServiceGetFormProcedure, opts...),
		addRecord:    connect.NewClient[AddRecordRequest, FormResponse](httpClient, baseURL+FormServiceAddRecordProcedure, opts...),
		updateRecord: connect.NewClient[UpdateRecordRequest, FormResponse](httpClient, baseURL+FormServiceUpdateRecordProcedure, opts...),
		toggleRecord: connect.NewClient[ToggleRecordRequest, FormResponse](httpClient, baseURL+FormServiceToggleRecordProcedure, opts...),
		removeRecord: connect.NewClient[RemoveRecordRequest, FormResponse](httpClient, baseURL+FormServiceRemoveRecordProcedure, opts...),
		calculate:    connect.NewClient[CalculateRequest, CalculateResponse](httpClient, baseURL+FormServiceCalculateProcedure, opts...),
		resetForm:    connect.NewClient[ResetFormRequest, FormResponse](httpClient, baseURL+FormServiceResetFormProcedure, opts...),
	}
}

type formServiceClient struct {
	getForm      *connect.Client[GetFormRequest, FormResponse]
	addRecord    *connect.Client[AddRecordRequest, FormResponse]
	updateRecord *connect.Client[UpdateRecordRequest, FormResponse]
	toggleRecord *connect.Client[ToggleRecordRequest, FormResponse]
	removeRecord *connect.Client[RemoveRecordRequest, FormResponse]
	calculate    *connect.Client[CalculateRequest, CalculateResponse]
	resetForm    *connect.Client[ResetFormRequest, FormResponse]
}

func (c *formServiceClient) GetForm(ctx context.Context, req *connect.Request[GetFormRequest]) (*connect.Response[FormResponse], error) {
	return c.getForm.CallUnary(ctx, req)
}

func (c *formServiceClient) AddRecord(ctx context.Context, req *connect.Request[AddRecordRequest]) (*connect.Response[FormResponse], error) {
	return c.addRecord.CallUnary(ctx, req)
}

func (c *formServiceClient) UpdateRecord(ctx context.Context, req *connect.Request[UpdateRecordRequest]) (*connect.Response[FormResponse], error) {
	return c.updateRecord.CallUnary(ctx, req)
}

func (c *formServiceClient) ToggleRecord(ctx context.Context, req *connect.Request[ToggleRecordRequest]) (*connect.Response[FormResponse], error) {
	return c.toggleRecord.CallUnary(ctx, req)
}

func (c *formServiceClient) RemoveRecord(ctx context.Context, req *connect.Request[RemoveRecordRequest]) (*connect.Response[FormResponse], error) {
	return c.removeRecord.CallUnary(ctx, req)
}

func (c *formServiceClient) Calculate(ctx context.Context, req *connect.Request[CalculateRequest]) (*connect.Response[CalculateResponse], error) {
	return c.calculate.CallUnary(ctx, req)
}

func (c *formServiceClient) ResetForm(ctx context.Context, req *connect.Request[ResetFormRequest]) (*connect.Response[FormResponse], error) {
	return c.resetForm.CallUnary(ctx, req)
}

// route dispatches on the exact procedure path.
func route(routes map[string]http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		h.ServeHTTP(w, r)
	})
}

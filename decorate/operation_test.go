// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package decorate

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/albertocavalcante/mdagen/model"
	"github.com/albertocavalcante/mdagen/resolve"
)

func TestSignature(t *testing.T) {
	svc := testService(t, nil)

	tests := []struct {
		name   string
		params []*model.Parameter
		want   string
		wantBO string
	}{
		{
			name: "no parameters",
		},
		{
			name: "primitives",
			params: []*model.Parameter{
				{Name: "id", Type: "integer"},
				{Name: "tag", Type: "string"},
			},
			want:   "int id, string tag",
			wantBO: "int id, string tag",
		},
		{
			name: "entity",
			params: []*model.Parameter{
				{Name: "order", Type: "Order"},
				{Name: "count", Type: "integer"},
			},
			want:   "Order order, int count",
			wantBO: "OrderBO order, int count",
		},
		{
			name: "many entity",
			params: []*model.Parameter{
				{Name: "orders", Type: "Order", Many: true},
			},
			want:   "List<Order> orders",
			wantBO: "List<OrderBO> orders",
		},
		{
			name: "enumeration is not a business object",
			params: []*model.Parameter{
				{Name: "status", Type: "Status"},
			},
			want:   "Status status",
			wantBO: "Status status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := operation(svc, &model.Operation{Name: "run", Parameters: tt.params})
			got, err := op.Signature()
			if err != nil {
				t.Fatalf("Signature() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Signature() = %q, want %q", got, tt.want)
			}
			gotBO, err := op.SignatureWithBO()
			if err != nil {
				t.Fatalf("SignatureWithBO() error = %v", err)
			}
			if gotBO != tt.wantBO {
				t.Errorf("SignatureWithBO() = %q, want %q", gotBO, tt.wantBO)
			}
		})
	}
}

func TestSignatureNameFirst(t *testing.T) {
	tests := []struct {
		delimiter string
		want      string
	}{
		{"", "id int, tags List<string>"},
		{": ", "id: int, tags: List<string>"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			svc := testService(t, nil)
			svc.Language().NameFirst = resolve.Bool(true)
			svc.Language().Delimiter = tt.delimiter

			op := operation(svc, &model.Operation{Name: "run", Parameters: []*model.Parameter{
				{Name: "id", Type: "integer"},
				{Name: "tags", Type: "string", Many: true},
			}})
			got, err := op.Signature()
			if err != nil {
				t.Fatalf("Signature() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Signature() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSignatureUnresolvedType(t *testing.T) {
	svc := testService(t, nil)
	op := operation(svc, &model.Operation{Name: "run", Parameters: []*model.Parameter{
		{Name: "x", Type: "Missing"},
	}})
	if _, err := op.Signature(); !errors.Is(err, resolve.ErrUnresolvedType) {
		t.Fatalf("Signature() error = %v, want ErrUnresolvedType", err)
	}
}

func TestImports(t *testing.T) {
	svc := testService(t, nil)

	tests := []struct {
		name       string
		op         *model.Operation
		wantParams []string
		wantAll    []string
	}{
		{
			name: "collection of entity",
			op: &model.Operation{Name: "save", Parameters: []*model.Parameter{
				{Name: "orders", Type: "Order", Many: true},
				{Name: "more", Type: "Order", Many: true},
				{Name: "amount", Type: "big_decimal"},
				{Name: "id", Type: "integer"},
			}},
			wantParams: []string{"com.example.shop.transfer.Order", "java.math.BigDecimal", "java.util.List"},
			wantAll:    []string{"com.example.shop.transfer.Order", "java.math.BigDecimal", "java.util.List"},
		},
		{
			name:    "collection return only",
			op:      &model.Operation{Name: "list", ReturnManyType: "Order"},
			wantAll: []string{"java.util.List"},
		},
		{
			name: "single return",
			op:   &model.Operation{Name: "find", ReturnType: "Order", Parameters: []*model.Parameter{{Name: "id", Type: "integer"}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := operation(svc, tt.op)
			params, err := op.ParameterImports()
			if err != nil {
				t.Fatalf("ParameterImports() error = %v", err)
			}
			if diff := cmp.Diff(tt.wantParams, params.Sorted()); diff != "" {
				t.Errorf("ParameterImports() mismatch (-want +got):\n%s", diff)
			}
			all, err := op.Imports()
			if err != nil {
				t.Fatalf("Imports() error = %v", err)
			}
			if diff := cmp.Diff(tt.wantAll, all.Sorted()); diff != "" {
				t.Errorf("Imports() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReturnState(t *testing.T) {
	svc := testService(t, nil)

	tests := []struct {
		name        string
		op          *model.Operation
		want        ReturnState
		wantType    string
		wantDeclare bool
	}{
		{name: "none", op: &model.Operation{Name: "a"}, want: ReturnNone, wantType: ""},
		{name: "void", op: &model.Operation{Name: "b", ReturnType: "void"}, want: ReturnVoid, wantType: "void", wantDeclare: true},
		{name: "void any case", op: &model.Operation{Name: "c", ReturnType: "VOID"}, want: ReturnVoid, wantType: "void", wantDeclare: true},
		{name: "single", op: &model.Operation{Name: "d", ReturnType: "Order"}, want: ReturnSingle, wantType: "Order", wantDeclare: true},
		{name: "many", op: &model.Operation{Name: "e", ReturnManyType: "Order"}, want: ReturnMany, wantType: "List<Order>", wantDeclare: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := operation(svc, tt.op)
			if got := op.ReturnState(); got != tt.want {
				t.Errorf("ReturnState() = %v, want %v", got, tt.want)
			}
			if got := op.HasDeclaredReturn(); got != tt.wantDeclare {
				t.Errorf("HasDeclaredReturn() = %v, want %v", got, tt.wantDeclare)
			}
			if got := op.IsVoid(); got != (tt.want == ReturnVoid) {
				t.Errorf("IsVoid() = %v", got)
			}
			got, err := op.WrappedReturnType()
			if err != nil {
				t.Fatalf("WrappedReturnType() error = %v", err)
			}
			if got != tt.wantType {
				t.Errorf("WrappedReturnType() = %q, want %q", got, tt.wantType)
			}
		})
	}
}

func TestReturnAsBO(t *testing.T) {
	svc := testService(t, nil)

	single := operation(svc, &model.Operation{Name: "find", ReturnType: "Order"})
	if got, _ := single.ReturnTypeAsBO(); got != "OrderBO" {
		t.Errorf("ReturnTypeAsBO() = %q, want %q", got, "OrderBO")
	}
	if ok, _ := single.IsReturnTypeEntity(); !ok {
		t.Error("IsReturnTypeEntity() = false, want true")
	}

	many := operation(svc, &model.Operation{Name: "list", ReturnManyType: "Order"})
	if got, _ := many.ReturnManyTypeAsBO(); got != "List<OrderBO>" {
		t.Errorf("ReturnManyTypeAsBO() = %q, want %q", got, "List<OrderBO>")
	}
	if ok, _ := many.IsReturnManyTypeEntity(); !ok {
		t.Error("IsReturnManyTypeEntity() = false, want true")
	}

	prim := operation(svc, &model.Operation{Name: "count", ReturnType: "integer"})
	if got, _ := prim.ReturnTypeAsBO(); got != "int" {
		t.Errorf("ReturnTypeAsBO() = %q, want %q", got, "int")
	}
}

func TestIsResponseTypeCrossProject(t *testing.T) {
	svc := testService(t, nil)

	tests := []struct {
		name       string
		returnType string
		want       bool
	}{
		{name: "local entity", returnType: "Order", want: false},
		{name: "dependency entity", returnType: "Invoice", want: true},
		{name: "primitive", returnType: "string", want: false},
		{name: "void", returnType: "void", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := operation(svc, &model.Operation{Name: "get", ReturnType: tt.returnType})
			got, err := op.IsResponseTypeCrossProject()
			if err != nil {
				t.Fatalf("IsResponseTypeCrossProject() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("IsResponseTypeCrossProject() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDocumentation(t *testing.T) {
	svc := testService(t, nil)

	tests := []struct {
		doc  string
		want string
	}{
		{doc: "", want: ""},
		{doc: "   ", want: "   "},
		{doc: "Finds an order", want: "Finds an order."},
		{doc: "Finds an order.", want: "Finds an order."},
		{doc: "Finds an order \n", want: "Finds an order."},
	}

	for _, tt := range tests {
		op := operation(svc, &model.Operation{Name: "find", Documentation: tt.doc})
		if got := op.Documentation(); got != tt.want {
			t.Errorf("Documentation() for %q = %q, want %q", tt.doc, got, tt.want)
		}
	}
}

func TestParametersWithCommas(t *testing.T) {
	svc := testService(t, nil)
	op := operation(svc, &model.Operation{Name: "run", Parameters: []*model.Parameter{
		{Name: "a", Type: "string"},
		{Name: "b", Type: "string"},
		{Name: "c", Type: "string"},
	}})

	var got []string
	for _, p := range op.ParametersWithCommas() {
		got = append(got, p.SignatureName())
	}
	if diff := cmp.Diff([]string{"a,", "b,", "c"}, got); diff != "" {
		t.Errorf("ParametersWithCommas() mismatch (-want +got):\n%s", diff)
	}

	// The plain view is not affected by the separated view.
	for _, p := range op.Parameters() {
		if p.Name() != "a" && p.Name() != "b" && p.Name() != "c" {
			t.Errorf("parameter name changed to %q", p.Name())
		}
	}
	if got := op.ParameterNames(); got != "a, b, c" {
		t.Errorf("ParameterNames() = %q, want %q", got, "a, b, c")
	}
	if !op.HasParameters() {
		t.Error("HasParameters() = false, want true")
	}
	if ok, _ := op.HasEntityParameters(); ok {
		t.Error("HasEntityParameters() = true, want false")
	}
}

func TestQueryParamSignature(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	svc := testService(t, zap.New(core))

	op := operation(svc, &model.Operation{Name: "search", Parameters: []*model.Parameter{
		{Name: "order", Type: "Order"},
		{Name: "limit", Type: "integer"},
	}})
	got, err := op.QueryParamSignature()
	if err != nil {
		t.Fatalf("QueryParamSignature() error = %v", err)
	}
	if want := `Order order, @QueryParam("limit") int limit`; got != want {
		t.Errorf("QueryParamSignature() = %q, want %q", got, want)
	}
	if logs.Len() != 0 {
		t.Errorf("logged %d warnings, want 0", logs.Len())
	}

	two := operation(svc, &model.Operation{Name: "merge", Parameters: []*model.Parameter{
		{Name: "a", Type: "Order"},
		{Name: "b", Type: "Item"},
	}})
	if _, err := two.QueryParamSignature(); err != nil {
		t.Fatalf("QueryParamSignature() error = %v", err)
	}
	if logs.Len() != 1 {
		t.Fatalf("logged %d warnings, want 1", logs.Len())
	}
	if got := logs.All()[0].ContextMap()["operation"]; got != "merge" {
		t.Errorf("warning operation = %v, want merge", got)
	}
}

func TestTransactionAttribute(t *testing.T) {
	tests := []struct {
		attr       string
		want       string
		wantNeeded bool
		wantWarn   bool
	}{
		{attr: "Required", want: PropagationRequired, wantNeeded: true},
		{attr: "RequiresNew", want: PropagationRequiresNew, wantNeeded: true},
		{attr: "Mandatory", want: PropagationMandatory, wantNeeded: true},
		{attr: "NotSupported", want: PropagationNotSupported},
		{attr: "Supports", want: PropagationSupports},
		{attr: "Never", want: PropagationNever},
		{attr: "Bogus", want: PropagationRequired, wantNeeded: true, wantWarn: true},
		{attr: "required", want: PropagationRequired, wantNeeded: true, wantWarn: true},
		{attr: "", want: PropagationRequired, wantNeeded: true, wantWarn: true},
	}

	for _, tt := range tests {
		t.Run(tt.attr, func(t *testing.T) {
			core, logs := observer.New(zapcore.WarnLevel)
			svc := testService(t, zap.New(core))
			op := operation(svc, &model.Operation{Name: "tx", TransactionAttribute: tt.attr})

			if got := op.TransactionAttribute(); got != tt.want {
				t.Errorf("TransactionAttribute() = %q, want %q", got, tt.want)
			}
			warned := logs.FilterMessageSnippet("unknown transaction attribute").Len() > 0
			if warned != tt.wantWarn {
				t.Errorf("warning logged = %v, want %v", warned, tt.wantWarn)
			}
			if got := op.IsTransactionNeeded(); got != tt.wantNeeded {
				t.Errorf("IsTransactionNeeded() = %v, want %v", got, tt.wantNeeded)
			}
		})
	}
}

func TestViewAndTransmission(t *testing.T) {
	svc := testService(t, nil)

	tests := []struct {
		view       model.ViewType
		wantLocal  bool
		wantRemote bool
	}{
		{view: model.ViewLocal, wantLocal: true},
		{view: model.ViewRemote, wantRemote: true},
		{view: model.ViewBoth, wantLocal: true, wantRemote: true},
		{view: ""},
	}
	for _, tt := range tests {
		op := operation(svc, &model.Operation{Name: "v", ViewType: tt.view})
		if op.IsLocal() != tt.wantLocal || op.IsRemote() != tt.wantRemote {
			t.Errorf("view %q: IsLocal() = %v, IsRemote() = %v; want %v, %v",
				tt.view, op.IsLocal(), op.IsRemote(), tt.wantLocal, tt.wantRemote)
		}
	}

	async := operation(svc, &model.Operation{Name: "a", TransmissionMethod: model.TransmissionAsync})
	if async.IsSynchronous() || !async.IsAsynchronous() {
		t.Error("ASYNC operation should be asynchronous only")
	}
	sync := operation(svc, &model.Operation{Name: "s", TransmissionMethod: model.TransmissionSync})
	if !sync.IsSynchronous() || sync.IsAsynchronous() {
		t.Error("SYNC operation should be synchronous only")
	}
}

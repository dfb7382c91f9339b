// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package decorate

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/albertocavalcante/mdagen/internal/naming"
	"github.com/albertocavalcante/mdagen/model"
	"github.com/albertocavalcante/mdagen/resolve"
)

// Transaction propagation kinds.
const (
	PropagationRequired     = "REQUIRED"
	PropagationRequiresNew  = "REQUIRES_NEW"
	PropagationMandatory    = "MANDATORY"
	PropagationNotSupported = "NOT_SUPPORTED"
	PropagationSupports     = "SUPPORTS"
	PropagationNever        = "NEVER"
)

var propagations = map[string]string{
	model.TransactionRequired:     PropagationRequired,
	model.TransactionRequiresNew:  PropagationRequiresNew,
	model.TransactionMandatory:    PropagationMandatory,
	model.TransactionNotSupported: PropagationNotSupported,
	model.TransactionSupports:     PropagationSupports,
	model.TransactionNever:        PropagationNever,
}

// ReturnState classifies what an operation returns.
type ReturnState int

// Return states. ReturnNone (nothing declared) and ReturnVoid (declared
// void) are distinct.
const (
	ReturnNone ReturnState = iota
	ReturnVoid
	ReturnSingle
	ReturnMany
)

// String returns the lower-case state name.
func (s ReturnState) String() string {
	switch s {
	case ReturnVoid:
		return "void"
	case ReturnSingle:
		return "single"
	case ReturnMany:
		return "many"
	default:
		return "none"
	}
}

// Operation decorates a service operation.
type Operation struct {
	op  *model.Operation
	svc *resolve.Service

	parameters      func() []*Parameter
	returnRes       func() (resolve.Resolution, error)
	signature       func() (string, error)
	signatureWithBO func() (string, error)
	parameterNames  func() string
}

// NewOperation wraps op.
func NewOperation(op *model.Operation, svc *resolve.Service) *Operation {
	d := &Operation{op: op, svc: svc}
	d.parameters = sync.OnceValue(func() []*Parameter {
		out := make([]*Parameter, len(op.Parameters))
		for i, p := range op.Parameters {
			out[i] = NewParameter(p, svc)
		}
		return out
	})
	d.returnRes = sync.OnceValues(d.resolveReturn)
	d.signature = sync.OnceValues(func() (string, error) {
		return d.buildSignature("")
	})
	d.signatureWithBO = sync.OnceValues(func() (string, error) {
		return d.buildSignature(BusinessObjectSuffix)
	})
	d.parameterNames = sync.OnceValue(func() string {
		names := make([]string, 0, len(op.Parameters))
		for _, p := range op.Parameters {
			names = append(names, p.Name)
		}
		return strings.Join(names, ", ")
	})
	return d
}

// Operations decorates every operation of s.
func Operations(s *model.Service, svc *resolve.Service) []*Operation {
	out := make([]*Operation, len(s.Operations))
	for i, op := range s.Operations {
		out[i] = NewOperation(op, svc)
	}
	return out
}

// Name returns the operation name.
func (d *Operation) Name() string { return d.op.Name }

// Documentation returns the documentation ending with a period, as
// expected by doc comment conventions. Blank documentation is returned
// unchanged.
func (d *Operation) Documentation() string {
	doc := d.op.Documentation
	if strings.TrimSpace(doc) == "" {
		return doc
	}
	doc = strings.TrimRight(doc, " \t\r\n")
	if !strings.HasSuffix(doc, ".") {
		doc += "."
	}
	return doc
}

// Type returns the declared return type, single or many.
func (d *Operation) Type() string {
	if d.op.ReturnType != "" {
		return d.op.ReturnType
	}
	return d.op.ReturnManyType
}

// CapitalizedName returns the name with its first letter in upper case.
func (d *Operation) CapitalizedName() string { return naming.Capitalize(d.op.Name) }

// UncapitalizedName returns the name with its first letter in lower case.
func (d *Operation) UncapitalizedName() string { return naming.Uncapitalize(d.op.Name) }

// ReturnType returns the declared single return type.
func (d *Operation) ReturnType() string { return d.op.ReturnType }

// ReturnManyType returns the declared collection element type.
func (d *Operation) ReturnManyType() string { return d.op.ReturnManyType }

// UncapitalizedReturnType returns the declared return type with a
// lower-case first letter.
func (d *Operation) UncapitalizedReturnType() string {
	return naming.Uncapitalize(d.Type())
}

// ReturnState classifies the declared return.
func (d *Operation) ReturnState() ReturnState {
	switch {
	case d.op.ReturnManyType != "":
		return ReturnMany
	case d.op.ReturnType == "":
		return ReturnNone
	case model.IsVoid(d.op.ReturnType):
		return ReturnVoid
	default:
		return ReturnSingle
	}
}

// IsVoid reports whether the return type is the void sentinel.
func (d *Operation) IsVoid() bool { return d.ReturnState() == ReturnVoid }

// HasDeclaredReturn reports whether a return type or return-many type is
// set.
func (d *Operation) HasDeclaredReturn() bool { return d.ReturnState() != ReturnNone }

// IsReturnTypeCollection reports whether the operation returns many.
func (d *Operation) IsReturnTypeCollection() bool { return d.ReturnState() == ReturnMany }

func (d *Operation) resolveReturn() (resolve.Resolution, error) {
	switch d.ReturnState() {
	case ReturnNone:
		return resolve.Resolution{}, nil
	case ReturnVoid:
		return resolve.Resolution{Kind: resolve.Simple, TypeName: d.svc.Language().Void}, nil
	}
	r, err := d.svc.Resolve(d.op.Project, d.Type())
	if err != nil {
		return r, fmt.Errorf("operation %s return: %w", d.op.Name, err)
	}
	return r, nil
}

// ReturnResolution returns the resolved return element type. It is the
// zero value when nothing is declared.
func (d *Operation) ReturnResolution() (resolve.Resolution, error) { return d.returnRes() }

// WrappedReturnType returns the target-language return type, wrapped in
// the collection type for return-many operations.
func (d *Operation) WrappedReturnType() (string, error) {
	r, err := d.returnRes()
	if err != nil {
		return "", err
	}
	if d.IsReturnTypeCollection() {
		return d.svc.Language().Collection.Wrap(r.TypeName), nil
	}
	return r.TypeName, nil
}

// ReturnImport returns the import of the return element type, or "".
func (d *Operation) ReturnImport() (string, error) {
	r, err := d.returnRes()
	return r.Import, err
}

// IsReturnTypeEntity reports whether the single return type is an entity.
func (d *Operation) IsReturnTypeEntity() (bool, error) {
	if d.ReturnState() != ReturnSingle {
		return false, nil
	}
	r, err := d.returnRes()
	return err == nil && r.Kind == resolve.Entity, err
}

// IsReturnManyTypeEntity reports whether the return-many type is an entity.
func (d *Operation) IsReturnManyTypeEntity() (bool, error) {
	if d.ReturnState() != ReturnMany {
		return false, nil
	}
	r, err := d.returnRes()
	return err == nil && r.Kind == resolve.Entity, err
}

// IsResponseTypeCrossProject reports whether the return type is an entity
// owned by a project other than the current application.
func (d *Operation) IsResponseTypeCrossProject() (bool, error) {
	r, err := d.returnRes()
	if err != nil {
		return false, err
	}
	return r.Kind == resolve.Entity && r.Project != d.svc.ApplicationName(), nil
}

// ReturnTypeAsBO returns the single return type, suffixed when it is an
// entity.
func (d *Operation) ReturnTypeAsBO() (string, error) {
	if d.ReturnState() != ReturnSingle {
		return d.WrappedReturnType()
	}
	r, err := d.returnRes()
	if err != nil {
		return "", err
	}
	if r.Kind == resolve.Entity {
		return r.TypeName + BusinessObjectSuffix, nil
	}
	return r.TypeName, nil
}

// ReturnManyTypeAsBO returns the wrapped return-many type, with the
// element suffixed when it is an entity.
func (d *Operation) ReturnManyTypeAsBO() (string, error) {
	if d.ReturnState() != ReturnMany {
		return "", nil
	}
	r, err := d.returnRes()
	if err != nil {
		return "", err
	}
	t := r.TypeName
	if r.Kind == resolve.Entity {
		t += BusinessObjectSuffix
	}
	return d.svc.Language().Collection.Wrap(t), nil
}

// Parameters returns the decorated parameters in declaration order.
func (d *Operation) Parameters() []*Parameter { return d.parameters() }

// ParametersWithCommas returns a view of the parameters where every one
// but the last carries a "," separator.
func (d *Operation) ParametersWithCommas() []SeparatedParameter {
	params := d.parameters()
	out := make([]SeparatedParameter, len(params))
	for i, p := range params {
		out[i] = SeparatedParameter{Parameter: p}
		if i < len(params)-1 {
			out[i].Separator = ","
		}
	}
	return out
}

// HasParameters reports whether the operation takes parameters.
func (d *Operation) HasParameters() bool { return len(d.op.Parameters) > 0 }

// HasEntityParameters reports whether at least one parameter is an entity.
func (d *Operation) HasEntityParameters() (bool, error) {
	for _, p := range d.parameters() {
		ok, err := p.IsEntity()
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// ParameterNames returns the parameter names joined by ", ".
func (d *Operation) ParameterNames() string { return d.parameterNames() }

// Signature returns the parameter declarations joined by ", ". An
// operation without parameters has an empty signature.
func (d *Operation) Signature() (string, error) { return d.signature() }

// SignatureWithBO is like Signature with entity types carrying the
// business object suffix.
func (d *Operation) SignatureWithBO() (string, error) { return d.signatureWithBO() }

func (d *Operation) buildSignature(suffix string) (string, error) {
	parts := make([]string, 0, len(d.op.Parameters))
	for _, p := range d.parameters() {
		t, err := p.declared(suffix)
		if err != nil {
			return "", err
		}
		parts = append(parts, d.pair(t, p.Name()))
	}
	return strings.Join(parts, ", "), nil
}

func (d *Operation) pair(typ, name string) string {
	if lang := d.svc.Language(); lang.IsNameFirst() {
		delim := lang.Delimiter
		if delim == "" {
			delim = " "
		}
		return name + delim + typ
	}
	return typ + " " + name
}

// QueryParamSignature returns the signature with every non-entity
// parameter annotated as a query parameter. At most one entity parameter
// can be bound to a request body; more than one is logged.
func (d *Operation) QueryParamSignature() (string, error) {
	lang := d.svc.Language()
	var (
		parts    []string
		entities int
	)
	for _, p := range d.parameters() {
		isEntity, err := p.IsEntity()
		if err != nil {
			return "", err
		}
		t, err := p.DeclaredType()
		if err != nil {
			return "", err
		}
		decl := d.pair(t, p.Name())
		if isEntity {
			entities++
		} else if lang.QueryParam != "" {
			decl = fmt.Sprintf(lang.QueryParam, p.Name()) + " " + decl
		}
		parts = append(parts, decl)
	}
	if entities > 1 {
		d.svc.Logger().Warn("operation has more than one entity parameter; use a single container entity",
			zap.String("operation", d.op.Name),
			zap.Int("entityParameters", entities),
		)
	}
	return strings.Join(parts, ", "), nil
}

// ParameterImports returns the imports needed to declare every parameter,
// plus the collection import when a parameter is many.
func (d *Operation) ParameterImports() (ImportSet, error) {
	set := NewImportSet()
	for _, p := range d.parameters() {
		imp, err := p.Import()
		if err != nil {
			return nil, err
		}
		set.Add(imp)
		if p.IsMany() {
			set.Add(d.svc.Language().Collection.Import)
		}
	}
	return set, nil
}

// Imports returns ParameterImports plus the collection import when the
// operation returns many.
func (d *Operation) Imports() (ImportSet, error) {
	set, err := d.ParameterImports()
	if err != nil {
		return nil, err
	}
	if d.IsReturnTypeCollection() {
		set.Add(d.svc.Language().Collection.Import)
	}
	return set, nil
}

// ViewType returns the declared client visibility.
func (d *Operation) ViewType() model.ViewType { return d.op.ViewType }

// IsRemote reports whether remote clients may call the operation.
func (d *Operation) IsRemote() bool {
	return d.op.ViewType == model.ViewRemote || d.op.ViewType == model.ViewBoth
}

// IsLocal reports whether local clients may call the operation.
func (d *Operation) IsLocal() bool {
	return d.op.ViewType == model.ViewLocal || d.op.ViewType == model.ViewBoth
}

// TransmissionMethod returns the declared transmission method.
func (d *Operation) TransmissionMethod() model.TransmissionMethod { return d.op.TransmissionMethod }

// IsSynchronous reports whether callers wait for the result.
func (d *Operation) IsSynchronous() bool {
	return d.op.TransmissionMethod == model.TransmissionSync
}

// IsAsynchronous reports whether the call returns before completion.
func (d *Operation) IsAsynchronous() bool {
	return d.op.TransmissionMethod == model.TransmissionAsync
}

// TransactionAttribute maps the declared transaction attribute to its
// propagation kind. Unknown values are logged and map to
// [PropagationRequired].
func (d *Operation) TransactionAttribute() string {
	if p, ok := propagations[d.op.TransactionAttribute]; ok {
		return p
	}
	d.svc.Logger().Warn("unknown transaction attribute, defaulting to "+PropagationRequired,
		zap.String("operation", d.op.Name),
		zap.String("transactionAttribute", d.op.TransactionAttribute),
	)
	return PropagationRequired
}

// IsTransactionNeeded reports whether the propagation requires an existing
// or new transaction.
func (d *Operation) IsTransactionNeeded() bool {
	switch d.TransactionAttribute() {
	case PropagationRequired, PropagationRequiresNew, PropagationMandatory:
		return true
	}
	return false
}

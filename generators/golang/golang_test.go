// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package golang

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"

	"github.com/albertocavalcante/mdagen/generator"
	"github.com/albertocavalcante/mdagen/internal/namespace"
	"github.com/albertocavalcante/mdagen/model"
	"github.com/albertocavalcante/mdagen/resolve"
)

func testContext(t *testing.T) *generator.Context {
	t.Helper()
	shop := &model.Project{
		Name: "shop",
		Entities: []*model.Entity{
			{Name: "Order", Documentation: "Order is a customer purchase.", Fields: []*model.Field{
				{Name: "id", Type: model.TypeLong, Required: true, MinValue: "1"},
				{Name: "status", Type: "Status"},
				{Name: "customer", Type: "Customer", Required: true},
				{Name: "zip", Type: model.TypeString, Format: "zip", MaxLength: "10"},
				{Name: "total", Type: model.TypeBigDecimal},
			}},
			{Name: "Customer", Fields: []*model.Field{
				{Name: "name", Type: model.TypeString, Required: true, MinLength: "2"},
			}},
		},
		Enumerations: []*model.Enumeration{
			{Name: "Status", Enums: []model.Enum{{Name: "OPEN"}, {Name: "IN_PROGRESS", Documentation: "being packed"}}},
		},
		Services: []*model.Service{
			{Name: "OrderService", Operations: []*model.Operation{
				{
					Name:                 "placeOrder",
					Parameters:           []*model.Parameter{{Name: "order", Type: "Order"}},
					ReturnType:           "Order",
					TransactionAttribute: model.TransactionRequiresNew,
				},
				{
					Name:                 "findOrders",
					Parameters:           []*model.Parameter{{Name: "status", Type: "Status"}},
					ReturnManyType:       "Order",
					TransactionAttribute: model.TransactionSupports,
				},
				{
					Name:                 "cancel",
					Parameters:           []*model.Parameter{{Name: "ids", Type: model.TypeLong, Many: true}},
					ReturnType:           model.Void,
					TransactionAttribute: model.TransactionRequired,
				},
			}},
		},
		Formats: []*model.Format{{Name: "zip", Patterns: []string{`^\d{5}$`}}},
	}
	repo, err := model.NewRepository(shop)
	if err != nil {
		t.Fatalf("NewRepository() error = %v", err)
	}
	ns := namespace.New()
	ns.Add("shop", "example.com/shop")
	return &generator.Context{
		BasePackage:        "example.com/shop",
		GeneratedSourceDir: "gen",
		MainSourceDir:      "src",
		MetadataContext:    generator.MetadataLocal,
		Metadata:           repo,
		Namespaces:         ns,
		Languages:          map[string]*resolve.Language{LanguageName: Language()},
		Logger:             zap.NewNop(),
		Output:             generator.NewOutput(),
	}
}

// squash collapses whitespace runs so assertions do not depend on gofmt
// alignment.
func squash(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func run(t *testing.T, factory generator.Factory) *generator.Context {
	t.Helper()
	gc := testContext(t)
	g, err := factory()
	if err != nil {
		t.Fatalf("factory error = %v", err)
	}
	if err := g.Generate(context.Background(), gc); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	return gc
}

func assertFile(t *testing.T, gc *generator.Context, path string, want []string) {
	t.Helper()
	content, ok := gc.Output.Get(path)
	if !ok {
		var paths []string
		for _, f := range gc.Output.Files() {
			paths = append(paths, f.Path)
		}
		t.Fatalf("missing %s; have %v", path, paths)
	}
	got := squash(string(content))
	for _, w := range want {
		if !strings.Contains(got, squash(w)) {
			t.Errorf("%s does not contain %q\n%s", path, w, content)
		}
	}
}

func TestEnumerationGenerator(t *testing.T) {
	gc := run(t, NewEnumerationGenerator)

	assertFile(t, gc, "gen/enumeration/status.go", []string{
		"// " + header,
		"package enumeration",
		"type Status string",
		`StatusOpen Status = "OPEN"`,
		`StatusInProgress Status = "IN_PROGRESS" // being packed`,
		"func StatusValues() []Status { return []Status{StatusOpen, StatusInProgress} }",
		"case StatusOpen, StatusInProgress: return true",
		"func (e Status) String() string",
	})
}

func TestTransferGenerator(t *testing.T) {
	gc := run(t, NewTransferGenerator)

	if gc.Output.Len() != 2 {
		t.Errorf("Output.Len() = %d, want 2", gc.Output.Len())
	}
	assertFile(t, gc, "gen/transfer/order.go", []string{
		"package transfer",
		`"example.com/shop/enumeration"`,
		`"github.com/shopspring/decimal"`,
		"// Order is a customer purchase.",
		"type Order struct {",
		"Id int64 `json:\"id\"`",
		"Status enumeration.Status `json:\"status,omitempty\"`",
		"Customer *Customer `json:\"customer\"`",
		"Total decimal.Decimal `json:\"total,omitempty\"`",
		"var orderZipPatterns = []*regexp.Regexp{regexp.MustCompile(\"^\\\\d{5}$\")}",
		"func (o *Order) Validate() error {",
		`if o.Id < 1 { errs = append(errs, fmt.Errorf("id: %v is below 1", o.Id)) }`,
		`if o.Customer == nil { errs = append(errs, errors.New("customer: is required")) }`,
		"if err := o.Customer.Validate(); err != nil {",
		`if o.Status != "" && !o.Status.IsValid() {`,
		"n := utf8.RuneCountInString(o.Zip); n > 10",
		"return errors.Join(errs...)",
	})
	assertFile(t, gc, "gen/transfer/customer.go", []string{
		"type Customer struct {",
		`if o.Name == "" { errs = append(errs, errors.New("name: is required")) }`,
		"n := utf8.RuneCountInString(o.Name); n < 2",
	})
}

func TestServiceGenerator(t *testing.T) {
	gc := run(t, NewServiceGenerator)

	assertFile(t, gc, "gen/service/order_service.go", []string{
		"package service",
		`"example.com/shop/transfer"`,
		"type OrderService interface {",
		"PlaceOrder(ctx context.Context, order *transfer.Order) (*transfer.Order, error)",
		"FindOrders(ctx context.Context, status enumeration.Status) ([]*transfer.Order, error)",
		"Cancel(ctx context.Context, ids []int64) error",
		"var OrderServiceTransactions = map[string]string{",
		`"PlaceOrder": "REQUIRES_NEW",`,
		`"FindOrders": "SUPPORTS",`,
		`"Cancel": "REQUIRED",`,
	})
}

func TestServiceImplGenerator(t *testing.T) {
	gc := run(t, NewServiceImplGenerator)

	files := gc.Output.Files()
	if len(files) != 1 {
		t.Fatalf("Output.Len() = %d, want 1", len(files))
	}
	if files[0].Path != "src/serviceimpl/order_service.go" || files[0].Overwrite {
		t.Errorf("file = %s (overwrite %v), want src/serviceimpl/order_service.go written once", files[0].Path, files[0].Overwrite)
	}
	content := string(files[0].Content)
	if strings.Contains(content, header) {
		t.Error("stub carries the generated-code header")
	}
	assertFile(t, gc, "src/serviceimpl/order_service.go", []string{
		"package serviceimpl",
		`"example.com/shop/service"`,
		"// OrderService implements service.OrderService.",
		"type OrderService struct{}",
		"var _ service.OrderService = (*OrderService)(nil)",
		"func (*OrderService) PlaceOrder(ctx context.Context, order *transfer.Order) (*transfer.Order, error) {",
		`return *new(*transfer.Order), errors.New("OrderService.PlaceOrder: not implemented")`,
		"func (*OrderService) FindOrders(ctx context.Context, status enumeration.Status) ([]*transfer.Order, error) {",
		`return *new([]*transfer.Order), errors.New("OrderService.FindOrders: not implemented")`,
		"func (*OrderService) Cancel(ctx context.Context, ids []int64) error {",
		`return errors.New("OrderService.Cancel: not implemented")`,
	})
}

func TestServiceImplGenerator_PackageOptions(t *testing.T) {
	gc := testContext(t)
	gc.Options = map[string]string{ServicePackageOption: "api", ServiceImplPackageOption: "internal/impl"}
	g, _ := NewServiceImplGenerator()
	if err := g.Generate(context.Background(), gc); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	assertFile(t, gc, "src/internal/impl/order_service.go", []string{
		"package impl",
		`"example.com/shop/api"`,
		"var _ api.OrderService = (*OrderService)(nil)",
	})
}

func TestServiceGenerator_PackageOption(t *testing.T) {
	gc := testContext(t)
	gc.Options = map[string]string{ServicePackageOption: "api"}
	g, _ := NewServiceGenerator()
	if err := g.Generate(context.Background(), gc); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if _, ok := gc.Output.Get("gen/api/order_service.go"); !ok {
		t.Error("service should be generated in the api package")
	}
}

func TestGenerate_Errors(t *testing.T) {
	factories := map[string]generator.Factory{
		EnumerationGenerator: NewEnumerationGenerator,
		TransferGenerator:    NewTransferGenerator,
		ServiceGenerator:     NewServiceGenerator,
		ServiceImplGenerator: NewServiceImplGenerator,
	}
	for name, factory := range factories {
		t.Run(name+"/no language", func(t *testing.T) {
			gc := testContext(t)
			gc.Languages = nil
			g, _ := factory()
			err := g.Generate(context.Background(), gc)
			if !errors.Is(err, generator.ErrInvalidContext) {
				t.Errorf("Generate() error = %v, want ErrInvalidContext", err)
			}
		})
		t.Run(name+"/canceled", func(t *testing.T) {
			gc := testContext(t)
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			g, _ := factory()
			if err := g.Generate(ctx, gc); !errors.Is(err, context.Canceled) {
				t.Errorf("Generate() error = %v, want context.Canceled", err)
			}
		})
	}
}

func TestTransferGenerator_UnknownFormat(t *testing.T) {
	gc := testContext(t)
	gc.Metadata.Entity("shop", "Customer").Fields[0].Format = "phone"
	g, _ := NewTransferGenerator()
	err := g.Generate(context.Background(), gc)
	if err == nil || !strings.Contains(err.Error(), "entity Customer") {
		t.Errorf("Generate() error = %v, want an error naming the entity", err)
	}
}

func TestRegister(t *testing.T) {
	r := generator.NewRegistry()
	Register(r)

	want := []string{EnumerationGenerator, ServiceGenerator, ServiceImplGenerator, TransferGenerator}
	if diff := cmp.Diff(want, r.List()); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}
}

func TestTypeCode(t *testing.T) {
	tests := []struct {
		name, importPath, want string
	}{
		{"string", "", "string"},
		{"[]byte", "", "[]byte"},
		{"[2]float64", "", "[2]float64"},
		{"*big.Int", "math/big", "*big.Int"},
		{"transfer.Order", "example.com/shop/transfer", "transfer.Order"},
		{"[]*transfer.Order", "example.com/shop/transfer", "[]*transfer.Order"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fmt.Sprintf("%#v", typeCode(tt.name, tt.importPath)); got != tt.want {
				t.Errorf("typeCode(%q, %q) = %q, want %q", tt.name, tt.importPath, got, tt.want)
			}
		})
	}
}

func TestSourcePath(t *testing.T) {
	tests := []struct {
		importPath, want string
	}{
		{"example.com/shop/transfer", "gen/transfer/x.go"},
		{"example.com/shop", "gen/example.com/shop/x.go"},
		{"example.com/crm/transfer", "gen/example.com/crm/transfer/x.go"},
	}
	for _, tt := range tests {
		if got := sourcePath("gen", "example.com/shop", tt.importPath, "x.go"); got != tt.want {
			t.Errorf("sourcePath(%q) = %q, want %q", tt.importPath, got, tt.want)
		}
	}
}

func TestLanguage(t *testing.T) {
	l := Language()
	if err := l.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	l.Primitives[model.TypeString] = resolve.Mapping{Type: "[]rune"}
	if DefaultMappings[model.TypeString].Type != "string" {
		t.Error("Language() should return an independent copy of the mappings")
	}
}

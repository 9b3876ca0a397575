package model_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	pkgmodel "github.com/goliatone/go-bookform/pkg/model"
	"github.com/goliatone/go-bookform/pkg/testsupport"
)

func TestFromDocumentBuildsOrderedFields(t *testing.T) {
	model := testsupport.LoadFormModel(t, "testdata/trip.yaml", "createTrip")

	if model.Method != "POST" || model.Endpoint != "/trips" || model.Summary != "Request a trip" {
		t.Fatalf("unexpected operation metadata %+v", model)
	}

	var names []string
	for _, field := range model.Fields {
		names = append(names, field.Name)
	}
	// Ordered names first, the rest alphabetically.
	want := []string{"title", "seats", "agree", "contact", "travellers"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("field order mismatch (-want +got):\n%s", diff)
	}
}

func TestFromDocumentMapsConstraints(t *testing.T) {
	model := testsupport.LoadFormModel(t, "testdata/trip.yaml", "createTrip")

	title, _ := model.Field("title")
	wantTitle := pkgmodel.Field{
		Name:     "title",
		Type:     pkgmodel.FieldTypeString,
		Required: true,
		Label:    "Title",
		Validations: []pkgmodel.ValidationRule{
			{Kind: pkgmodel.ValidationRuleMinLength, Params: map[string]string{"value": "2"}},
			{Kind: pkgmodel.ValidationRuleMaxLength, Params: map[string]string{"value": "40"}},
		},
	}
	if diff := cmp.Diff(wantTitle, title); diff != "" {
		t.Fatalf("title mismatch (-want +got):\n%s", diff)
	}

	seats, _ := model.Field("seats")
	wantSeats := []pkgmodel.ValidationRule{
		{Kind: pkgmodel.ValidationRuleMin, Params: map[string]string{"value": "1"}},
		{Kind: pkgmodel.ValidationRuleMax, Params: map[string]string{"value": "4"}},
	}
	if diff := cmp.Diff(wantSeats, seats.Validations); diff != "" {
		t.Fatalf("seats rules mismatch (-want +got):\n%s", diff)
	}

	contact, _ := model.Field("contact")
	if diff := cmp.Diff([]string{"emailExists"}, contact.AsyncValidators); diff != "" {
		t.Fatalf("async validators mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]pkgmodel.ValidationRule{{Kind: pkgmodel.ValidationRuleEmail}}, contact.Validations); diff != "" {
		t.Fatalf("contact rules mismatch (-want +got):\n%s", diff)
	}

	agree, _ := model.Field("agree")
	if agree.Default != false || len(agree.Validations) != 1 || agree.Validations[0].Kind != pkgmodel.ValidationRuleRequiredTrue {
		t.Fatalf("unexpected agree field %+v", agree)
	}
}

func TestFromDocumentDescribesArrayItems(t *testing.T) {
	model := testsupport.LoadFormModel(t, "testdata/trip.yaml", "createTrip")

	travellers, _ := model.Field("travellers")
	if travellers.Type != pkgmodel.FieldTypeArray || travellers.Items == nil {
		t.Fatalf("expected array with items, got %+v", travellers)
	}
	want := []pkgmodel.Field{{
		Name:     "name",
		Type:     pkgmodel.FieldTypeString,
		Required: true,
		Label:    "Name",
		Validations: []pkgmodel.ValidationRule{
			{Kind: pkgmodel.ValidationRulePattern, Params: map[string]string{"pattern": "^[A-Z]"}},
		},
	}}
	if diff := cmp.Diff(want, travellers.Items.Nested); diff != "" {
		t.Fatalf("item fields mismatch (-want +got):\n%s", diff)
	}
}

func TestFromDocumentUnknownOperation(t *testing.T) {
	doc := testsupport.LoadDocument(t, "testdata/trip.yaml")
	if _, err := pkgmodel.FromDocument(context.Background(), doc, "deleteTrip"); err == nil {
		t.Fatalf("expected error for unknown operation")
	}
}

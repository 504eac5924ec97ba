package dto

import (
	"testing"

	"galeri_backend/internals/features/merchandise/model"
)

func TestVariantsRoundTripThroughJSONColumn(t *testing.T) {
	price := int64(95000)
	m, err := CreateMerchandiseRequest{
		Name:     "  Tote Bag Galeri ",
		Price:    85000,
		Variants: []Variant{{Name: " Hitam "}, {Name: "Putih", Price: &price}},
	}.ToModel(nil)
	if err != nil {
		t.Fatalf("ToModel: %v", err)
	}
	if m.Name != "Tote Bag Galeri" || !m.IsAvailable {
		t.Fatalf("unexpected model: %+v", m)
	}
	got := FromModel(m).Variants
	if len(got) != 2 || got[0].Name != "Hitam" || got[1].Price == nil || *got[1].Price != price {
		t.Fatalf("variants = %+v", got)
	}
}

func TestDecodeVariantsTolerant(t *testing.T) {
	if v := DecodeVariants(nil); v == nil || len(v) != 0 {
		t.Fatalf("nil column = %v", v)
	}
	if v := DecodeVariants([]byte(`{"bukan":"array"}`)); len(v) != 0 {
		t.Fatalf("broken column = %v", v)
	}
}

func TestUpdateApply(t *testing.T) {
	m := model.MerchandiseModel{Name: "Kaos", Stock: 3, IsAvailable: true}
	name, stock, off := "Kaos Pameran", 0, false
	changed, err := UpdateMerchandiseRequest{Name: &name, Stock: &stock, IsAvailable: &off}.Apply(&m)
	if err != nil || !changed {
		t.Fatalf("changed=%v err=%v", changed, err)
	}
	if m.Stock != 0 || m.IsAvailable {
		t.Fatalf("patch not applied: %+v", m)
	}
	if changed, _ := (UpdateMerchandiseRequest{}).Apply(&m); changed {
		t.Fatal("empty patch must not change name")
	}
}

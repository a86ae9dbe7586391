package catalog

import (
	"reflect"
	"testing"
)

func TestDescriptor_Segments(t *testing.T) {
	tests := []struct {
		name string
		full string
		want []string
	}{
		{"dotted", "A.B.Foo", []string{"A", "B", "Foo"}},
		{"nested type plus", "Game.Items+Stack", []string{"Game", "Items", "Stack"}},
		{"slash separator", "Game/Items/Sword", []string{"Game", "Items", "Sword"}},
		{"single segment", "Foo", []string{"Foo"}},
		{"empty segments dropped", "A..Foo", []string{"A", "Foo"}},
		{"empty name", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &Descriptor{FullName: tt.full}
			if got := d.Segments(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Segments() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDescriptor_Breadcrumb(t *testing.T) {
	d := &Descriptor{FullName: "Game.Items.ItemStack`1"}
	want := []string{"Game", "Items", "Item Stack"}
	if got := d.Breadcrumb(); !reflect.DeepEqual(got, want) {
		t.Errorf("Breadcrumb() = %v, want %v", got, want)
	}
}

func TestDescriptor_BreadcrumbEmpty(t *testing.T) {
	d := &Descriptor{}
	if got := d.Breadcrumb(); got != nil {
		t.Errorf("Breadcrumb() = %v, want nil", got)
	}

	var nilDesc *Descriptor
	if got := nilDesc.Breadcrumb(); got != nil {
		t.Errorf("nil Breadcrumb() = %v, want nil", got)
	}
}

func TestDescriptor_DisplayName(t *testing.T) {
	d := &Descriptor{FullName: "Game.Combat.DamageDealer"}
	if got := d.DisplayName(); got != "Damage Dealer" {
		t.Errorf("DisplayName() = %q, want %q", got, "Damage Dealer")
	}
}

func TestIconHint_Empty(t *testing.T) {
	if !(IconHint{}).Empty() {
		t.Error("zero IconHint should be empty")
	}
	if (IconHint{Builtin: "d_Script"}).Empty() {
		t.Error("hint with builtin should not be empty")
	}
}

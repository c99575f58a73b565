package domain

import "testing"

func TestSignalVariants(t *testing.T) {
	frame, err := NewUniformFrame(2, 2, 3, 9)
	if err != nil {
		t.Fatalf("NewUniformFrame failed: %v", err)
	}

	tests := []struct {
		name       string
		sig        Signal
		wantKind   Kind
		wantVoid   bool
		wantScalar float64
		wantFrame  bool
	}{
		{name: "Void", sig: Void(), wantKind: KindVoid, wantVoid: true},
		{name: "Zero value is Void", sig: Signal{}, wantKind: KindVoid, wantVoid: true},
		{name: "Value", sig: Value(0.5), wantKind: KindValue, wantScalar: 0.5},
		{name: "Negative Value", sig: Value(-2), wantKind: KindValue, wantScalar: -2},
		{name: "Image", sig: Image(frame), wantKind: KindImage, wantFrame: true},
		{name: "Nil frame degrades to Void", sig: Image(nil), wantKind: KindVoid, wantVoid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sig.Kind(); got != tt.wantKind {
				t.Errorf("Kind() = %v, want %v", got, tt.wantKind)
			}
			if got := tt.sig.IsVoid(); got != tt.wantVoid {
				t.Errorf("IsVoid() = %v, want %v", got, tt.wantVoid)
			}
			if got := tt.sig.Scalar(); got != tt.wantScalar {
				t.Errorf("Scalar() = %v, want %v", got, tt.wantScalar)
			}
			if f, ok := tt.sig.Frame(); ok != tt.wantFrame {
				t.Errorf("Frame() ok = %v, want %v", ok, tt.wantFrame)
			} else if ok && f != frame {
				t.Error("Frame() returned a different frame reference")
			}
		})
	}
}

// Copying an Image signal must share the payload, not duplicate it.
func TestSignalCopySharesFrame(t *testing.T) {
	frame, err := NewUniformFrame(4, 4, 3, 100)
	if err != nil {
		t.Fatalf("NewUniformFrame failed: %v", err)
	}

	original := Image(frame)
	clone := original // plain value copy, as the engine snapshots signals

	f1, ok := original.Frame()
	if !ok {
		t.Fatal("original lost its frame")
	}
	f2, ok := clone.Frame()
	if !ok {
		t.Fatal("copy lost its frame")
	}

	if f1 != f2 {
		t.Error("copy points at a different Frame allocation")
	}
	if &f1.Data()[0] != &f2.Data()[0] {
		t.Error("copy duplicated the payload bytes")
	}
}

func TestScalarDefaultsForNonValue(t *testing.T) {
	frame, _ := NewUniformFrame(1, 1, 1, 0)

	if got := Void().Scalar(); got != 0 {
		t.Errorf("Void().Scalar() = %v, want 0", got)
	}
	if got := Image(frame).Scalar(); got != 0 {
		t.Errorf("Image().Scalar() = %v, want 0", got)
	}
	if _, ok := Value(1).Frame(); ok {
		t.Error("Value().Frame() reported a payload")
	}
}

func TestKindString(t *testing.T) {
	if KindVoid.String() != "void" || KindValue.String() != "value" || KindImage.String() != "image" {
		t.Errorf("unexpected kind names: %s/%s/%s", KindVoid, KindValue, KindImage)
	}
}

package types

import (
	"reflect"
	"testing"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		name    string
		dt      DataType
		args    []string
		want    Value
		wantErr bool
	}{
		{"ascii joins", TypeASCII, []string{"Canon", "EOS"}, Text("Canon EOS"), false},
		{"short", TypeShort, []string{"6"}, U16{6}, false},
		{"short hex", TypeShort, []string{"0xFFFF"}, U16{0xFFFF}, false},
		{"short overflow", TypeShort, []string{"65536"}, nil, true},
		{"bytes", TypeByte, []string{"2", "3", "0", "0"}, U8{2, 3, 0, 0}, false},
		{"sbyte", TypeSByte, []string{"-1"}, I8{-1}, false},
		{"sshort", TypeSShort, []string{"-300"}, I16{-300}, false},
		{"long", TypeLong, []string{"4000", "3000"}, U32{4000, 3000}, false},
		{"slong", TypeSLong, []string{"-7"}, I32{-7}, false},
		{"rational", TypeRational, []string{"1/125"}, URational{{1, 125}}, false},
		{"rational whole", TypeRational, []string{"72"}, URational{{72, 1}}, false},
		{"rational bad", TypeRational, []string{"1/"}, nil, true},
		{"srational", TypeSRational, []string{"-1/3"}, IRational{{-1, 3}}, false},
		{"float", TypeFloat, []string{"1.5"}, F32{1.5}, false},
		{"double", TypeDouble, []string{"-0.25"}, F64{-0.25}, false},
		{"undefined literal", TypeUndefined, []string{"0230"}, Undefined("0230"), false},
		{"undefined hex", TypeUndefined, []string{"hex:01 02 03 00"}, Undefined{1, 2, 3, 0}, false},
		{"undefined bad hex", TypeUndefined, []string{"hex:zz"}, nil, true},
		{"no components", TypeShort, nil, nil, true},
		{"not a number", TypeLong, []string{"abc"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseValue(tt.dt, tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseValue() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseValue() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

package util

import (
	"reflect"
	"testing"
)

func TestExpandRange(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		want    []int
		wantErr bool
	}{
		{name: "simple range", spec: "1-5", want: []int{1, 2, 3, 4, 5}},
		{name: "list", spec: "1,3,5", want: []int{1, 3, 5}},
		{name: "mixed", spec: "1-3,5,7-9", want: []int{1, 2, 3, 5, 7, 8, 9}},
		{name: "dedup and sort", spec: "5,1,5,2-3", want: []int{1, 2, 3, 5}},
		{name: "empty", spec: "", want: nil},
		{name: "reversed range", spec: "5-1", wantErr: true},
		{name: "garbage", spec: "a-b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandRange(tt.spec)
			if (err != nil) != tt.wantErr {
				t.Errorf("ExpandRange() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExpandRange() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompactRange(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   string
	}{
		{name: "contiguous and singles", values: []int{1, 2, 3, 5, 7, 8, 9}, want: "1-3,5,7-9"},
		{name: "single value", values: []int{7}, want: "7"},
		{name: "unsorted input", values: []int{9, 7, 8}, want: "7-9"},
		{name: "empty", values: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CompactRange(tt.values); got != tt.want {
				t.Errorf("CompactRange() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExpandInterfaceRange(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		want    []string
		wantErr bool
	}{
		{
			name: "nxos slot/port",
			spec: "Ethernet1/1-4",
			want: []string{"Ethernet1/1", "Ethernet1/2", "Ethernet1/3", "Ethernet1/4"},
		},
		{
			name: "single interface",
			spec: "Ethernet1/48",
			want: []string{"Ethernet1/48"},
		},
		{
			name: "flat naming",
			spec: "Ethernet0-2",
			want: []string{"Ethernet0", "Ethernet1", "Ethernet2"},
		},
		{name: "no numeric part", spec: "Ethernet", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandInterfaceRange(tt.spec)
			if (err != nil) != tt.wantErr {
				t.Errorf("ExpandInterfaceRange() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExpandInterfaceRange() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExpandVLANRange_RejectsVLAN1(t *testing.T) {
	if _, err := ExpandVLANRange("1-5"); err == nil {
		t.Error("expected error for range including VLAN 1")
	}
}

package util

import (
	"testing"
)

func TestParseIPWithMask(t *testing.T) {
	tests := []struct {
		name     string
		cidr     string
		wantIP   string
		wantMask int
		wantErr  bool
	}{
		{
			name:     "valid /24",
			cidr:     "192.168.1.100/24",
			wantIP:   "192.168.1.100",
			wantMask: 24,
		},
		{
			name:     "valid /31",
			cidr:     "10.1.1.0/31",
			wantIP:   "10.1.1.0",
			wantMask: 31,
		},
		{
			name:     "valid /32",
			cidr:     "10.0.0.1/32",
			wantIP:   "10.0.0.1",
			wantMask: 32,
		},
		{
			name:    "invalid - no mask",
			cidr:    "192.168.1.100",
			wantErr: true,
		},
		{
			name:    "invalid - bad IP",
			cidr:    "999.999.999.999/24",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ip, mask, err := ParseIPWithMask(tt.cidr)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseIPWithMask() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr {
				if ip.String() != tt.wantIP {
					t.Errorf("ParseIPWithMask() IP = %v, want %v", ip.String(), tt.wantIP)
				}
				if mask != tt.wantMask {
					t.Errorf("ParseIPWithMask() mask = %v, want %v", mask, tt.wantMask)
				}
			}
		})
	}
}

func TestComputeNeighborIP(t *testing.T) {
	tests := []struct {
		name    string
		localIP string
		maskLen int
		want    string
	}{
		{name: "/31 first IP", localIP: "10.1.1.0", maskLen: 31, want: "10.1.1.1"},
		{name: "/31 second IP", localIP: "10.1.1.1", maskLen: 31, want: "10.1.1.0"},
		{name: "/30 first host", localIP: "10.1.1.1", maskLen: 30, want: "10.1.1.2"},
		{name: "/30 second host", localIP: "10.1.1.2", maskLen: 30, want: "10.1.1.1"},
		{name: "/30 network address", localIP: "10.1.1.0", maskLen: 30, want: ""},
		{name: "/24 not point-to-point", localIP: "10.1.1.1", maskLen: 24, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeNeighborIP(tt.localIP, tt.maskLen); got != tt.want {
				t.Errorf("ComputeNeighborIP() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOffsetAddr(t *testing.T) {
	tests := []struct {
		name   string
		ip     string
		offset int
		want   string
	}{
		{name: "plus two", ip: "10.0.0.0", offset: 2, want: "10.0.0.2"},
		{name: "minus one from broadcast", ip: "10.0.0.255", offset: -1, want: "10.0.0.254"},
		{name: "crosses octet boundary", ip: "10.0.0.254", offset: 4, want: "10.0.1.2"},
		{name: "invalid IP", ip: "not-an-ip", offset: 1, want: ""},
		{name: "underflow", ip: "0.0.0.0", offset: -1, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OffsetAddr(tt.ip, tt.offset); got != tt.want {
				t.Errorf("OffsetAddr() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSubnetMask(t *testing.T) {
	tests := []struct {
		maskLen int
		want    string
	}{
		{24, "255.255.255.0"},
		{31, "255.255.255.254"},
		{32, "255.255.255.255"},
		{16, "255.255.0.0"},
		{0, "0.0.0.0"},
		{33, ""},
	}

	for _, tt := range tests {
		if got := SubnetMask(tt.maskLen); got != tt.want {
			t.Errorf("SubnetMask(%d) = %v, want %v", tt.maskLen, got, tt.want)
		}
	}
}

func TestValidateASN(t *testing.T) {
	tests := []struct {
		name    string
		asn     int64
		wantErr bool
	}{
		{name: "private 16-bit", asn: 65001},
		{name: "32-bit ASN", asn: 4200003000},
		{name: "max 4-byte", asn: 4294967295},
		{name: "zero", asn: 0, wantErr: true},
		{name: "over max", asn: 4294967296, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateASN(tt.asn); (err != nil) != tt.wantErr {
				t.Errorf("ValidateASN(%d) error = %v, wantErr %v", tt.asn, err, tt.wantErr)
			}
		})
	}
}

func TestValidateVLANID(t *testing.T) {
	if err := ValidateVLANID(1); err == nil {
		t.Error("VLAN 1 must be rejected")
	}
	if err := ValidateVLANID(2); err != nil {
		t.Errorf("VLAN 2 should be valid: %v", err)
	}
	if err := ValidateVLANID(4095); err == nil {
		t.Error("VLAN 4095 must be rejected")
	}
}

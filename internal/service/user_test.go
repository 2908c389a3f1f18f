package service

import "testing"

func TestCensorEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  string
	}{
		{
			name:  "typical address",
			email: "johndoe@example.com",
			want:  "jo*****@e******.***",
		},
		{
			name:  "short local part kept whole",
			email: "ab@example.com",
			want:  "ab@e******.***",
		},
		{
			name:  "single char local part",
			email: "a@b.co",
			want:  "a@b.**",
		},
		{
			name:  "dots in domain survive",
			email: "user@mail.example.co.jp",
			want:  "us**@m***.*******.**.**",
		},
		{
			name:  "no at sign returned unchanged",
			email: "not-an-email",
			want:  "not-an-email",
		},
		{
			name:  "empty string",
			email: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CensorEmail(tt.email); got != tt.want {
				t.Errorf("CensorEmail(%q) = %q, want %q", tt.email, got, tt.want)
			}
		})
	}
}

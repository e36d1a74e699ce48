package i18n

import "testing"

func TestMessageLocalize(t *testing.T) {
	msg := New(MsgUserNotExists, "zidane")

	t.Run("english fallback", func(t *testing.T) {
		got := msg.Localize(PrinterFor(""))
		if got != "User 'zidane' does not exist." {
			t.Fatalf("unexpected message: %q", got)
		}
	})

	t.Run("indonesian", func(t *testing.T) {
		got := msg.Localize(PrinterFor("id-ID,id;q=0.9,en;q=0.8"))
		if got != "Pengguna 'zidane' tidak ditemukan." {
			t.Fatalf("unexpected message: %q", got)
		}
	})

	t.Run("nil printer", func(t *testing.T) {
		if got := msg.Localize(nil); got != msg.String() {
			t.Fatalf("unexpected message: %q", got)
		}
	})
}

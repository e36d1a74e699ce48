package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	MsgUserNotExists  = "User '%s' does not exist."
	MsgPrivateProfile = "Sorry, %s's profile is private. Profile visibility can be changed in Control Panel."
	MsgUnknownError   = "Something went wrong while loading this profile. Please try again later."
)

func init() {
	translations := map[language.Tag]map[string]string{
		language.Indonesian: {
			MsgUserNotExists:  "Pengguna '%s' tidak ditemukan.",
			MsgPrivateProfile: "Maaf, profil %s bersifat privat. Visibilitas profil dapat diubah di Control Panel.",
			MsgUnknownError:   "Terjadi kesalahan saat memuat profil ini. Silakan coba lagi nanti.",
		},
		language.Polish: {
			MsgUserNotExists:  "Użytkownik '%s' nie istnieje.",
			MsgPrivateProfile: "Niestety, profil użytkownika %s jest prywatny. Widoczność profilu można zmienić w Panelu Sterowania.",
			MsgUnknownError:   "Wystąpił błąd podczas wczytywania profilu. Spróbuj ponownie później.",
		},
	}

	for tag, entries := range translations {
		for key, msg := range entries {
			if err := message.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}
}

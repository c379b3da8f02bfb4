package i18n

import "golang.org/x/text/language"

// translations holds the non-English UI strings, keyed by their English
// text.
var translations = map[language.Tag]map[string]string{
	language.German: {
		"Learn at your own pace.":            "Lerne in deinem eigenen Tempo.",
		"Home":                               "Start",
		"Login":                              "Anmelden",
		"Log in":                             "Anmelden",
		"Register":                           "Registrieren",
		"Create account":                     "Konto erstellen",
		"Language":                           "Sprache",
		"Logging out…":                       "Abmelden…",
		"Quit":                               "Beenden",
		"Welcome":                            "Willkommen",
		"Welcome, %s":                        "Willkommen, %s",
		"Verify your email":                  "E-Mail bestätigen",
		"Page not found":                     "Seite nicht gefunden",
		"The page %s does not exist.":        "Die Seite %s existiert nicht.",
		"Email":                              "E-Mail",
		"Password":                           "Passwort",
		"First name":                         "Vorname",
		"Last name":                          "Nachname",
		"Username":                           "Benutzername",
		"Submit":                             "Absenden",
		"Submitting…":                        "Wird gesendet…",
		"Back":                               "Zurück",
		"Select":                             "Auswählen",
		"Navigate":                           "Navigieren",
		"Next field":                         "Nächstes Feld",
		"Go to":                              "Gehe zu",
		"Log out":                            "Abmelden",
		"Open a node":                        "Knoten öffnen",
		"I know this":                        "Kenne ich schon",
		"Saving…":                            "Wird gespeichert…",
		"Finished ✓":                         "Erledigt ✓",
		"Node":                               "Knoten",
		"Environment":                        "Umgebung",
		"We sent a verification link to %s.": "Wir haben einen Bestätigungslink an %s gesendet.",
		"Check your inbox.":                  "Prüfe dein Postfach.",
	},
	language.Spanish: {
		"Learn at your own pace.":            "Aprende a tu propio ritmo.",
		"Home":                               "Inicio",
		"Login":                              "Iniciar sesión",
		"Log in":                             "Iniciar sesión",
		"Register":                           "Registrarse",
		"Create account":                     "Crear cuenta",
		"Language":                           "Idioma",
		"Logging out…":                       "Cerrando sesión…",
		"Quit":                               "Salir",
		"Welcome":                            "Bienvenida",
		"Welcome, %s":                        "Bienvenida, %s",
		"Verify your email":                  "Verifica tu correo",
		"Page not found":                     "Página no encontrada",
		"The page %s does not exist.":        "La página %s no existe.",
		"Email":                              "Correo",
		"Password":                           "Contraseña",
		"First name":                         "Nombre",
		"Last name":                          "Apellido",
		"Username":                           "Usuario",
		"Submit":                             "Enviar",
		"Submitting…":                        "Enviando…",
		"Back":                               "Atrás",
		"Select":                             "Elegir",
		"Navigate":                           "Navegar",
		"Next field":                         "Siguiente campo",
		"Go to":                              "Ir a",
		"Log out":                            "Cerrar sesión",
		"Open a node":                        "Abrir un nodo",
		"I know this":                        "Ya lo sé",
		"Saving…":                            "Guardando…",
		"Finished ✓":                         "Terminado ✓",
		"Node":                               "Nodo",
		"Environment":                        "Entorno",
		"We sent a verification link to %s.": "Enviamos un enlace de verificación a %s.",
		"Check your inbox.":                  "Revisa tu bandeja de entrada.",
	},
}

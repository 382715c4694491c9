package i18n

// Message keys shared by every catalog.
const (
	LoginSuccessful        = "loginSuccessful"
	RegisteredSuccessfully = "registeredSuccessfully"
	InputsInvalid          = "inputsInvalid"
	EmailIsTaken           = "emailIsTaken"
	RegisterError          = "registerError"
	InvalidCredentials     = "invalidCredentials"
	AccountNotFound        = "accountNotFound"
	LoginError             = "loginError"
	TokenInvalid           = "tokenInvalid"
	TokenMismatch          = "tokenMismatch"
	RefreshError           = "refreshError"
	Authorized             = "authorized"
	Unauthorized           = "unauthorized"
	ServerError            = "serverError"
	NotFound               = "notFound"
	Hello                  = "hello"
)

var catalogs = map[string]map[string]string{
	"en": {
		LoginSuccessful:        "Login successful",
		RegisteredSuccessfully: "Registered successfully",
		InputsInvalid:          "Invalid email, password or name",
		EmailIsTaken:           "Email is already taken",
		RegisterError:          "Error during registration",
		InvalidCredentials:     "Invalid credentials",
		AccountNotFound:        "Account not found",
		LoginError:             "Error during login",
		TokenInvalid:           "Invalid or expired token",
		TokenMismatch:          "User not found or token mismatch",
		RefreshError:           "Error when refreshing the token",
		Authorized:             "Authorized request successful",
		Unauthorized:           "Unauthorized",
		ServerError:            "Something went wrong",
		NotFound:               "Not Found",
		Hello:                  "hello",
	},
	"pl": {
		LoginSuccessful:        "Zalogowano pomyślnie",
		RegisteredSuccessfully: "Rejestracja zakończona pomyślnie",
		InputsInvalid:          "Nieprawidłowy email, hasło lub imię",
		EmailIsTaken:           "Email jest już zajęty",
		RegisterError:          "Błąd podczas rejestracji",
		InvalidCredentials:     "Nieprawidłowe dane logowania",
		AccountNotFound:        "Nie znaleziono konta",
		LoginError:             "Błąd podczas logowania",
		TokenInvalid:           "Nieprawidłowy lub wygasły token",
		TokenMismatch:          "Nie znaleziono użytkownika lub token się nie zgadza",
		RefreshError:           "Błąd podczas odświeżania tokenu",
		Authorized:             "Autoryzowane żądanie powiodło się",
		Unauthorized:           "Brak autoryzacji",
		ServerError:            "Coś poszło nie tak",
		NotFound:               "Nie znaleziono",
		Hello:                  "cześć",
	},
}

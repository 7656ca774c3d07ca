package settings

// Defaults returns the compiled-in baseline Set. Pure: no I/O, no error
// path, same result on every call.
//
// The baseline is deliberately conservative. Anything dangerous (debug
// mode, permissive hosts, real email delivery) is off until an override
// layer turns it on, so a missing override fails safe.
func Defaults() Set {
	return NewSet(map[string]any{
		"DEBUG":         false,
		"SECRET_KEY":    "",
		"ALLOWED_HOSTS": []string{},
		"TIME_ZONE":     "UTC",
		"LANGUAGE_CODE": "en-us",
		"USE_TZ":        true,
		"STATIC_URL":    "/static/",
		"MEDIA_URL":     "/media/",
		"DATABASE_URL":  "sqlite:///db.sqlite3",
		"EMAIL_BACKEND": "console",
		"EMAIL_HOST":    "localhost",
		"EMAIL_PORT":    25,
		"SECURE_HSTS":   false,
		"CACHE_TTL":     300,
	})
}

// DefaultHints declares coercion types for every baseline key, so string
// overrides of baseline keys come back typed without the caller writing a
// hints file.
func DefaultHints() Hints {
	return Hints{
		"DEBUG":         {Type: TypeBool, Default: false},
		"SECRET_KEY":    {Type: TypeString, Default: ""},
		"ALLOWED_HOSTS": {Type: TypeList, Default: []string{}},
		"TIME_ZONE":     {Type: TypeString, Default: "UTC"},
		"LANGUAGE_CODE": {Type: TypeString, Default: "en-us"},
		"USE_TZ":        {Type: TypeBool, Default: true},
		"STATIC_URL":    {Type: TypeString, Default: "/static/"},
		"MEDIA_URL":     {Type: TypeString, Default: "/media/"},
		"DATABASE_URL":  {Type: TypeString, Default: "sqlite:///db.sqlite3"},
		"EMAIL_BACKEND": {Type: TypeString, Default: "console"},
		"EMAIL_HOST":    {Type: TypeString, Default: "localhost"},
		"EMAIL_PORT":    {Type: TypeInt, Default: 25},
		"SECURE_HSTS":   {Type: TypeBool, Default: false},
		"CACHE_TTL":     {Type: TypeInt, Default: 300},
	}
}

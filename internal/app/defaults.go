package app

// defaults apply when neither config.yaml nor a SECUREAUTH_* variable sets the key.
var defaults = map[string]any{
	"app.tz":                   "UTC",
	"app.node_id":              1,
	"app.server.max_goroutine": 0,

	"app.server.http.address":                     ":8080",
	"app.server.http.read_timeout_seconds":        15,
	"app.server.http.read_header_timeout_seconds": 5,
	"app.server.http.write_timeout_seconds":       15,
	"app.server.http.idle_timeout_seconds":        60,

	"instrument.enabled":              false,
	"instrument.service_name":         "secureauth",
	"instrument.log_level":            "info",
	"instrument.trace_sample_percent": 100,

	"instrument.log_mask_fields": []string{
		"password", "current_password", "new_password", "confirm_password", "confirm_new_password",
		"code", "access_token", "challenge_token",
	},

	"hash.password.algorithm": "bcrypt",
	"hash.bcrypt.cost":        12,

	"session.ttl_minutes": 30,

	"database.pool.max_conns": 10,
	"database.pool.min_conns": 1,

	"mail.driver":    "log",
	"mail.port":      587,
	"mail.from":      "no-reply@secureauth.local",
	"mail.from_name": "Secure Auth System",

	"messaging.driver": "memory",

	"modules.identity.enabled":                      true,
	"modules.identity.otp.length":                   6,
	"modules.identity.otp.ttl_minutes":              5,
	"modules.identity.otp.revoke_previous_on_issue": true,
	"modules.identity.login_challenge_ttl_minutes":  10,
	"modules.identity.password.enforce_strength":    true,

	"modules.audit.enabled":     true,
	"modules.audit.concurrency": 4,

	"modules.audit.consumer_names": []string{"user_login_audit"},

	"modules.notification.enabled":     true,
	"modules.notification.concurrency": 4,

	"modules.notification.consumer_names": []string{"user_registered_notification"},
}

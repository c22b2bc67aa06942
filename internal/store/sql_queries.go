package store

const (
	userColumns = `user_id, email, password_hash, first_name, last_name, organization, role,
		email_confirmed, two_factor_enabled, require_password_change,
		failed_attempts, lockout_until, created_at, last_login_at, last_password_changed_at`

	createUser = `INSERT INTO users (user_id, email, password_hash, first_name, last_name, organization, role,
		email_confirmed, two_factor_enabled, require_password_change, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	RETURNING ` + userColumns + `;`

	findUserByEmail = `SELECT ` + userColumns + `
	FROM users
	WHERE email = $1;`

	findUserByID = `SELECT ` + userColumns + `
	FROM users
	WHERE user_id = $1;`

	completeLogin = `UPDATE users
	SET last_login_at = $2, failed_attempts = 0, lockout_until = NULL
	WHERE user_id = $1;`

	// Increments the counter and arms the lockout window in the same
	// statement, so two concurrent failed attempts can never both observe
	// the pre-increment value.
	registerFailedAttempt = `UPDATE users
	SET failed_attempts = failed_attempts + 1,
	    lockout_until = CASE WHEN failed_attempts + 1 >= $2 THEN $3 ELSE lockout_until END
	WHERE user_id = $1
	RETURNING failed_attempts;`

	resetLockout = `UPDATE users
	SET failed_attempts = 0, lockout_until = NULL
	WHERE user_id = $1;`

	setPassword = `UPDATE users
	SET password_hash = $2, last_password_changed_at = $3, require_password_change = FALSE
	WHERE user_id = $1;`

	// The email_confirmed = FALSE guard makes a replayed confirmation a
	// zero-row update instead of a silent success.
	confirmEmail = `UPDATE users
	SET email_confirmed = TRUE
	WHERE user_id = $1 AND email_confirmed = FALSE;`

	setTwoFactorEnabled = `UPDATE users
	SET two_factor_enabled = $2
	WHERE user_id = $1;`

	saveTwoFactorCode = `INSERT INTO two_factor_codes (user_id, code, expires_at, used)
	VALUES ($1, $2, $3, FALSE);`

	// Single conditional UPDATE: of any number of concurrent redemptions of
	// the same code, exactly one reports a row affected.
	consumeTwoFactorCode = `UPDATE two_factor_codes
	SET used = TRUE
	WHERE user_id = $1 AND code = $2 AND used = FALSE AND expires_at > $3;`

	markTwoFactorCodeUsed = `UPDATE two_factor_codes
	SET used = TRUE
	WHERE user_id = $1 AND code = $2;`

	deleteExpiredTwoFactorCodes = `DELETE FROM two_factor_codes
	WHERE expires_at <= $1 OR used = TRUE;`

	createSession = `INSERT INTO sessions (session_id, user_id, created_at, expires_at)
	VALUES ($1, $2, $3, $4);`

	getSession = `SELECT session_id, user_id, created_at, expires_at
	FROM sessions
	WHERE session_id = $1 AND expires_at > $2;`

	extendSession = `UPDATE sessions
	SET expires_at = $2
	WHERE session_id = $1;`

	deleteSession = `DELETE FROM sessions
	WHERE session_id = $1;`

	deleteExpiredSessions = `DELETE FROM sessions
	WHERE expires_at <= $1;`

	addInstallHistoryRecord = `INSERT INTO install_history (user_id, os, installed_at)
	VALUES ($1, $2, $3)
	RETURNING id;`
)

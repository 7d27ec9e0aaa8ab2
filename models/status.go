// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ShortURL Platform

package models

// Status is the machine-readable outcome code returned in every response
// body. The values are stable wire constants; clients switch on them rather
// than on HTTP status codes or message text.
type Status string

const (
	StatusSuccess                  Status = "SUCCESS"
	StatusMissingUsername          Status = "MISSING_USERNAME"
	StatusMissingPassword          Status = "MISSING_PASSWORD"
	StatusMissingOldPassword       Status = "MISSING_OLD_PASSWORD"
	StatusMissingNewPassword       Status = "MISSING_NEW_PASSWORD"
	StatusUserAlreadyExists        Status = "USER_ALREADY_EXISTS"
	StatusNoSuchUser               Status = "NO_SUCH_USER"
	StatusWrongPassword            Status = "WRONG_PASSWORD"
	StatusUserConfirmationMismatch Status = "USER_CONFIRMATION_MISMATCH"
	StatusMustBeAdmin              Status = "MUST_BE_ADMIN"
	StatusNotOnLocalMachine        Status = "NOT_ON_LOCAL_MACHINE"
	StatusUnknownError             Status = "UNKNOWN_ERROR"
)

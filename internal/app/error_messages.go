// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// class-reports server handlers and the admin client.
//
// All Msg* constants are human-readable message strings written into the
// "message" field of the response envelope. Keeping them in one place
// ensures consistent wording throughout the API.
package app

const (
	// MsgValidationFailed accompanies a 400 response whose "errors" array
	// lists the failed validation rules in field order.
	MsgValidationFailed = "Validation failed!"

	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or converted.
	MsgInvalidDataProvided = "Invalid data provided!"

	// MsgInvalidLoginPassword is returned when the supplied username/password
	// combination does not match any existing user record.
	MsgInvalidLoginPassword = "Invalid username or password!"

	// MsgInternalServerError is returned for unexpected server-side failures.
	MsgInternalServerError = "Internal server error!"

	// MsgServiceUnavailable is returned when validation could not complete
	// because the database lookup failed.
	MsgServiceUnavailable = "Service is temporarily unavailable, please retry!"

	MsgUnauthorized            = "Authorization is required!"
	MsgTokenIsExpiredOrInvalid = "Token is expired or invalid!"

	// MsgAccessDenied is returned by employee-only routes for other roles.
	MsgAccessDenied = "Access denied!"

	MsgUserAlreadyExists = "User with given username or e-mail already exists!"
	MsgClassNotFound     = "Class was not found!"

	MsgUserRegistered      = "User was successfully registered!"
	MsgUserLoggedIn        = "User was successfully logged in!"
	MsgClassCreated        = "Class was successfully created!"
	MsgClassUpdated        = "Class was successfully updated!"
	MsgClassArchived       = "Class was successfully archived!"
	MsgClassFound          = "Class was found!"
	MsgClassesFound        = "Classes were found!"
	MsgClassRoleCreated    = "Class role was successfully created!"
	MsgReportEntityCreated = "Report entity was successfully created!"
	MsgInvalidClassID      = "Invalid class id!"
)

package validators

// Messages returned verbatim to API clients. "{field}" is replaced with the
// field name by Rule.Render.
const (
	MsgFieldNotDefined = "Field '{field}' is not defined!"
	MsgFieldEmpty      = "Field '{field}' is empty!"

	MsgClassRoleNameNotDefined           = "Field 'name' is not defined!"
	MsgClassRolePaymentNotDefined        = "Field 'paymentPerHour' is not defined!"
	MsgClassRolePaymentNotNumber         = "Field 'paymentPerHour' is not a number"
	MsgClassRolePaymentNotPositiveOrZero = "Field 'paymentPerHour' is negative!"

	MsgReportIDNotExisting         = "Report with given 'reportId' does not exist!"
	MsgClassIDNotDefined           = "Field 'classId' is not defined!"
	MsgClassIDNotExisting          = "Class with given 'classId' does not exist!"
	MsgClassRoleIDNotDefined       = "Field 'classRoleId' is not defined!"
	MsgClassRoleIDNotExisting      = "Class role with given 'classRoleId' does not exist!"
	MsgReportDateNotDefined        = "Field 'date' is not defined!"
	MsgReportDateNotValid          = "Field 'date' is not a valid date!"
	MsgReportHoursSpendNotDefined  = "Field 'hoursSpend' is not defined!"
	MsgReportHoursSpendNotPositive = "Field 'hoursSpend' must be a positive number!"

	MsgUsernameNotDefined  = "Field 'username' is not defined!"
	MsgUsernameLength      = "Field 'username' must be between 3 and 45 characters long!"
	MsgUsernameNotUnique   = "User with given username already exists!"
	MsgEmailNotDefined     = "Field 'email' is not defined!"
	MsgEmailNotValid       = "Field 'email' is not a valid e-mail address!"
	MsgEmailNotUnique      = "User with given e-mail already exists!"
	MsgPasswordNotDefined  = "Field 'password' is not defined!"
	MsgPasswordLength      = "Field 'password' must be between 5 and 64 characters long!"
	MsgFirstNameNotDefined = "Field 'firstName' is not defined!"
	MsgFirstNameLength     = "Field 'firstName' must be between 1 and 45 characters long!"
	MsgLastNameNotDefined  = "Field 'lastName' is not defined!"
	MsgLastNameLength      = "Field 'lastName' must be between 1 and 45 characters long!"
	MsgRoleIDNotDefined    = "Field 'roleId' is not defined!"
	MsgRoleIDNotInteger    = "Field 'roleId' is not an integer!"

	MsgClassNameNotDefined     = "Field 'name' is not defined!"
	MsgClassNameLength         = "Field 'name' must be between 1 and 60 characters long!"
	MsgClassAgeGroupNotDefined = "Field 'ageGroup' is not defined!"
	MsgClassDescriptionLength  = "Field 'description' must be at most 255 characters long!"
)

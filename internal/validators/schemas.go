package validators

// Entity names of the request schemas.
const (
	EntityClassRole        = "classRole"
	EntityReportEntity     = "reportEntity"
	EntityUserRegistration = "userRegistration"
	EntityClass            = "class"
	EntityLogin            = "login"
)

// Field names shared by schemas and the service layer.
const (
	FieldName           = "name"
	FieldPaymentPerHour = "paymentPerHour"

	FieldReportID    = "reportId"
	FieldClassID     = "classId"
	FieldClassRoleID = "classRoleId"
	FieldDate        = "date"
	FieldHoursSpend  = "hoursSpend"

	FieldUsername  = "username"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
	FieldRoleID    = "roleId"

	FieldAgeGroup    = "ageGroup"
	FieldDescription = "description"
)

// ClassRoleSchema validates the body of a class-role creation request.
var ClassRoleSchema = MustSchema(EntityClassRole,
	Field(FieldName).Required().Rules(
		IsDefined(MsgClassRoleNameNotDefined),
	),
	Field(FieldPaymentPerHour).Required().Rules(
		IsDefined(MsgClassRolePaymentNotDefined),
		IsNumber(MsgClassRolePaymentNotNumber),
		IsNumberPositiveOrZero(MsgClassRolePaymentNotPositiveOrZero),
	),
)

// ReportEntitySchema validates the body of a report-entity creation request.
// reportId is optional; classId must reference a class that is not archived.
var ReportEntitySchema = MustSchema(EntityReportEntity,
	Field(FieldReportID).Rules(
		Exists(KindReport, MsgReportIDNotExisting),
	),
	Field(FieldClassID).Required().Rules(
		IsDefined(MsgClassIDNotDefined),
		Exists(KindClass, MsgClassIDNotExisting),
	),
	Field(FieldClassRoleID).Required().Rules(
		IsDefined(MsgClassRoleIDNotDefined),
		Exists(KindClassRole, MsgClassRoleIDNotExisting),
	),
	Field(FieldDate).Required().Extract(AsDate(FieldDate)).Rules(
		IsDefined(MsgReportDateNotDefined),
		IsDate(MsgReportDateNotValid),
	),
	Field(FieldHoursSpend).Required().Extract(AsFloat(FieldHoursSpend)).Rules(
		IsDefined(MsgReportHoursSpendNotDefined),
		IsPositive(MsgReportHoursSpendNotPositive),
	),
)

// UserRegistrationSchema validates the body of a registration request.
// An absent or blank field yields exactly one "not defined" error: the
// length, format and uniqueness rules pass on absent values.
var UserRegistrationSchema = MustSchema(EntityUserRegistration,
	Field(FieldUsername).Required().Rules(
		IsDefined(MsgUsernameNotDefined),
		Length(3, 45, MsgUsernameLength),
		IsUsernameUnique(MsgUsernameNotUnique),
	),
	Field(FieldEmail).Required().Rules(
		IsDefined(MsgEmailNotDefined),
		IsEmail(MsgEmailNotValid),
		IsEmailUnique(MsgEmailNotUnique),
	),
	Field(FieldPassword).Required().Rules(
		IsDefined(MsgPasswordNotDefined),
		Length(5, 64, MsgPasswordLength),
	),
	Field(FieldFirstName).Required().Rules(
		IsDefined(MsgFirstNameNotDefined),
		Length(1, 45, MsgFirstNameLength),
	),
	Field(FieldLastName).Required().Rules(
		IsDefined(MsgLastNameNotDefined),
		Length(1, 45, MsgLastNameLength),
	),
	Field(FieldRoleID).Required().Rules(
		IsDefined(MsgRoleIDNotDefined),
		IsInt(MsgRoleIDNotInteger),
	),
)

// ClassSchema validates the body of a class creation request.
var ClassSchema = MustSchema(EntityClass,
	Field(FieldName).Required().Rules(
		IsDefined(MsgClassNameNotDefined),
		Length(1, 60, MsgClassNameLength),
	),
	Field(FieldAgeGroup).Required().Rules(
		IsDefined(MsgClassAgeGroupNotDefined),
	),
	Field(FieldDescription).Rules(
		Length(0, 255, MsgClassDescriptionLength),
	),
)

// LoginSchema validates the body of a login request.
var LoginSchema = MustSchema(EntityLogin,
	Field(FieldUsername).Required().Rules(
		IsDefined(MsgUsernameNotDefined),
	),
	Field(FieldPassword).Required().Rules(
		IsDefined(MsgPasswordNotDefined),
	),
)

// Schemas lists every request schema, for Engine.Register at startup.
func Schemas() []*Schema {
	return []*Schema{
		ClassRoleSchema,
		ReportEntitySchema,
		UserRegistrationSchema,
		ClassSchema,
		LoginSchema,
	}
}

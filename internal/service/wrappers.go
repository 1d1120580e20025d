package service

// AuthServiceWrapper decorates an AuthService, e.g. with request validation.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// ClassServiceWrapper decorates a ClassService.
type ClassServiceWrapper interface {
	Wrap(ClassService) ClassService
}

// ClassRoleServiceWrapper decorates a ClassRoleService.
type ClassRoleServiceWrapper interface {
	Wrap(ClassRoleService) ClassRoleService
}

// ReportEntityServiceWrapper decorates a ReportEntityService.
type ReportEntityServiceWrapper interface {
	Wrap(ReportEntityService) ReportEntityService
}

package i18n

// Common errors
var (
	ErrUnauthorized   = NewErrorWithCode("ErrorUnauthenticated", ErrorUnauthorized)
	ErrForbidden      = NewErrorWithCode("ErrorPermissionDenied", ErrorForbidden)
	ErrBadRequest     = NewErrorWithCode("ErrorBadRequest", ErrorBadRequest)
	ErrNotFound       = NewErrorWithCode("ErrorResourceNotFound", ErrorNotFound)
	ErrInternalServer = NewErrorWithCode("ErrorInternalServer", ErrorInternalServer)
)

// Authentication related errors
var (
	ErrorInvalidCredentials     = NewErrorWithCode("ErrorInvalidCredentials", ErrorUnauthorized)
	ErrorRegisterRequiredFields = NewErrorWithCode("ErrorRegisterRequiredFields", ErrorBadRequest)
	ErrorEmailRegistered        = NewErrorWithCode("ErrorEmailRegistered", ErrorBadRequest)
	ErrorPasswordRequiredFields = NewErrorWithCode("ErrorPasswordRequiredFields", ErrorBadRequest)
	ErrorPasswordTooShort       = NewErrorWithCode("ErrorPasswordTooShort", ErrorBadRequest)
	ErrorCurrentPasswordInvalid = NewErrorWithCode("ErrorCurrentPasswordInvalid", ErrorBadRequest)
)

// User related errors
var (
	ErrorUserRequiredFields        = NewErrorWithCode("ErrorUserRequiredFields", ErrorBadRequest)
	ErrorUserEmailExists           = NewErrorWithCode("ErrorUserEmailExists", ErrorBadRequest)
	ErrorUserNotFound              = NewErrorWithCode("ErrorUserNotFound", ErrorNotFound)
	ErrorUserSelfDelete            = NewErrorWithCode("ErrorUserSelfDelete", ErrorBadRequest)
	ErrorRoleMissing               = NewErrorWithCode("ErrorRoleMissing", ErrorBadRequest)
	ErrorCompanyMissing            = NewErrorWithCode("ErrorCompanyMissing", ErrorBadRequest)
	ErrorDepartmentMissing         = NewErrorWithCode("ErrorDepartmentMissing", ErrorBadRequest)
	ErrorDepartmentWithoutCompany  = NewErrorWithCode("ErrorDepartmentWithoutCompany", ErrorBadRequest)
	ErrorDepartmentCompanyMismatch = NewErrorWithCode("ErrorDepartmentCompanyMismatch", ErrorBadRequest)
)

// Role related errors
var (
	ErrorRoleNameRequired = NewErrorWithCode("ErrorRoleNameRequired", ErrorBadRequest)
	ErrorRoleNameExists   = NewErrorWithCode("ErrorRoleNameExists", ErrorBadRequest)
	ErrorRoleNotFound     = NewErrorWithCode("ErrorRoleNotFound", ErrorNotFound)
	ErrorRoleInUse        = NewErrorWithCode("ErrorRoleInUse", ErrorBadRequest)
)

// Company related errors
var (
	ErrorCompanyNameRequired = NewErrorWithCode("ErrorCompanyNameRequired", ErrorBadRequest)
	ErrorCompanyNameExists   = NewErrorWithCode("ErrorCompanyNameExists", ErrorBadRequest)
	ErrorCompanyNotFound     = NewErrorWithCode("ErrorCompanyNotFound", ErrorNotFound)
	ErrorCompanyInUse        = NewErrorWithCode("ErrorCompanyInUse", ErrorBadRequest)
)

// Department related errors
var (
	ErrorDepartmentNameRequired    = NewErrorWithCode("ErrorDepartmentNameRequired", ErrorBadRequest)
	ErrorDepartmentCompanyRequired = NewErrorWithCode("ErrorDepartmentCompanyRequired", ErrorBadRequest)
	ErrorDepartmentNameExists      = NewErrorWithCode("ErrorDepartmentNameExists", ErrorBadRequest)
	ErrorDepartmentNotFound        = NewErrorWithCode("ErrorDepartmentNotFound", ErrorNotFound)
)

// Success messages
const (
	SuccessLogin             = "SuccessLogin"
	SuccessPasswordChanged   = "SuccessPasswordChanged"
	SuccessUserDeleted       = "SuccessUserDeleted"
	SuccessRoleDeleted       = "SuccessRoleDeleted"
	SuccessCompanyDeleted    = "SuccessCompanyDeleted"
	SuccessDepartmentDeleted = "SuccessDepartmentDeleted"
)

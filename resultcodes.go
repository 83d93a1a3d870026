package ldap

// LDAP result codes (RFC 4511 §4.1.9), named the way go-ldap/ldap names
// its LDAPResultXxx constants and matching rusticata's ldap.rs
// ResultCode values.
const (
	LDAPResultSuccess                      uint32 = 0
	LDAPResultOperationsError              uint32 = 1
	LDAPResultProtocolError                uint32 = 2
	LDAPResultTimeLimitExceeded            uint32 = 3
	LDAPResultSizeLimitExceeded            uint32 = 4
	LDAPResultCompareFalse                 uint32 = 5
	LDAPResultCompareTrue                  uint32 = 6
	LDAPResultAuthMethodNotSupported       uint32 = 7
	LDAPResultStrongerAuthRequired         uint32 = 8
	LDAPResultReferral                     uint32 = 10
	LDAPResultAdminLimitExceeded           uint32 = 11
	LDAPResultUnavailableCriticalExtension uint32 = 12
	LDAPResultConfidentialityRequired      uint32 = 13
	LDAPResultSaslBindInProgress           uint32 = 14
	LDAPResultNoSuchAttribute              uint32 = 16
	LDAPResultUndefinedAttributeType       uint32 = 17
	LDAPResultInappropriateMatching        uint32 = 18
	LDAPResultConstraintViolation          uint32 = 19
	LDAPResultAttributeOrValueExists       uint32 = 20
	LDAPResultInvalidAttributeSyntax       uint32 = 21
	LDAPResultNoSuchObject                 uint32 = 32
	LDAPResultAliasProblem                 uint32 = 33
	LDAPResultInvalidDNSyntax              uint32 = 34
	LDAPResultAliasDereferencingProblem    uint32 = 36
	LDAPResultInappropriateAuthentication  uint32 = 48
	LDAPResultInvalidCredentials           uint32 = 49
	LDAPResultInsufficientAccessRights     uint32 = 50
	LDAPResultBusy                         uint32 = 51
	LDAPResultUnavailable                  uint32 = 52
	LDAPResultUnwillingToPerform           uint32 = 53
	LDAPResultLoopDetect                   uint32 = 54
	LDAPResultNamingViolation              uint32 = 64
	LDAPResultObjectClassViolation         uint32 = 65
	LDAPResultNotAllowedOnNonLeaf          uint32 = 66
	LDAPResultNotAllowedOnRDN              uint32 = 67
	LDAPResultEntryAlreadyExists           uint32 = 68
	LDAPResultObjectClassModsProhibited    uint32 = 69
	LDAPResultAffectsMultipleDSAs          uint32 = 71
	LDAPResultOther                        uint32 = 80
)

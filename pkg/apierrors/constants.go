package apierrors

const (
	MsgServerError        = "serverError"
	MsgInvalidTaskID      = "invalidTaskID"
	MsgInvalidTaskForm    = "invalidTaskForm"
	MsgInvalidStatus      = "invalidStatus"
	MsgMalformedAssignees = "malformedAssignees"
	MsgUnknownAssignee    = "unknownAssignee"
	MsgTaskNotFound       = "taskNotFound"
	MsgTaskDeleted        = "taskDeleted"
	MsgFailListTasks      = "failListTasks"
	MsgFailCreateTask     = "failCreateTask"
	MsgFailAssignTask     = "failAssignTask"
	MsgFailUpdateTask     = "failUpdateTask"
	MsgFailDeleteTask     = "failDeleteTask"
	MsgFailPatchStatus    = "failPatchStatus"

	MsgAuthRequired       = "authRequired"
	MsgInvalidToken       = "invalidToken"
	MsgInvalidCredentials = "invalidCredentials"
	MsgEmailTaken         = "emailTaken"
	MsgLoginSuccess       = "loginSuccess"
	MsgUserCreated        = "userCreated"
	MsgUserUpdated        = "userUpdated"
	MsgUserDeleted        = "userDeleted"
	MsgUserNotFound       = "userNotFound"
	MsgInvalidUserID      = "invalidUserID"
	MsgInvalidUserPayload = "invalidUserPayload"
	MsgFailListUsers      = "failListUsers"

	MsgDocumentNotFound   = "documentNotFound"
	MsgInvalidDocumentID  = "invalidDocumentID"
	MsgDocumentDeleted    = "documentDeleted"
	MsgFileRequired       = "fileRequired"
	MsgFileTooLarge       = "fileTooLarge"
	MsgFailListDocuments  = "failListDocuments"
	MsgFailUploadDocument = "failUploadDocument"
	MsgFailDeleteDocument = "failDeleteDocument"
)

package apiv1

import (
	"fmt"
	"onboarding-backend/controllers"
	"onboarding-backend/lib/apperr"
	"onboarding-backend/lib/candidate"
	xlsexport "onboarding-backend/lib/export/xls"
	"onboarding-backend/middleware"
	"onboarding-backend/models"
	apimodels "onboarding-backend/models/api"
	candidateapimodels "onboarding-backend/models/api/candidate"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
)

type candidateApiController struct {
	controllers.BaseAPIController
}

func InitCandidateApiRouters(app *fiber.App) {
	controller := candidateApiController{}
	app.Route("candidates", func(router fiber.Router) {
		router.Post("", controller.submit)
		router.Get("", controller.list)
		router.Get("export", middleware.AdminRequired(), controller.export)
		router.Get(":id", controller.get)
		router.Patch(":id/approve", controller.approve)
		router.Post(":id/documents", controller.uploadDocument)
		router.Get(":id/documents/:name", controller.getDocument)
	})
}

// @Summary Submit candidate application
// @Tags Candidates
// @Description Completes the profile of a signed-in candidate. A rejected application goes back to HR review.
// @Param   Authorization		header		string	false	"Bearer token"
// @Param	body				body		candidateapimodels.SubmitRequest	true	"request body"
// @Success 201 {object} candidateapimodels.CandidateView
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/candidates [post]
func (c *candidateApiController) submit(ctx *fiber.Ctx) error {
	var payload candidateapimodels.SubmitRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := candidate.Instance.Submit(middleware.GetActor(ctx), payload)
	if err != nil {
		if apperr.Is(err, apperr.NotFound) {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(apperr.MessageOf(err, "")))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to create candidate.")
	}
	return ctx.Status(fiber.StatusCreated).JSON(resp)
}

// @Summary List candidates
// @Tags Candidates
// @Description hr sees Pending, it and finance see In_Progress, admin sees all. A candidate gets its own record or null.
// @Param   role	query	string	false	"legacy role"
// @Param   id		query	string	false	"candidate id, required for the candidate role"
// @Success 200 {array} candidateapimodels.CandidateView
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/candidates [get]
func (c *candidateApiController) list(ctx *fiber.Ctx) error {
	actor := middleware.GetActor(ctx)
	list, err := candidate.Instance.List(candidateapimodels.ListFilter{
		Actor:       actor,
		CandidateID: ctx.Query("id"),
	})
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to fetch candidates.")
	}
	if actor.Role == models.CandidateRole {
		if len(list) == 0 {
			return ctx.Status(fiber.StatusOK).JSON(nil)
		}
		return ctx.Status(fiber.StatusOK).JSON(list[0])
	}
	return ctx.Status(fiber.StatusOK).JSON(list)
}

// @Summary Get candidate
// @Tags Candidates
// @Param   id		path	string	true	"candidate id"
// @Success 200 {object} candidateapimodels.CandidateView
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/candidates/{id} [get]
func (c *candidateApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to fetch candidate.")
	}
	resp, err := candidate.Instance.Get(middleware.GetActor(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to fetch candidate.")
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Record department decisions
// @Tags Candidates
// @Description Applies the hrApproval, itApproval and financeApproval blocks the caller role may decide.
// @Param   id		path	string	true	"candidate id"
// @Param   role	query	string	false	"legacy role"
// @Param	body	body	candidateapimodels.ApproveRequest	true	"request body"
// @Success 200 {object} candidateapimodels.CandidateView
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/candidates/{id}/approve [patch]
func (c *candidateApiController) approve(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to update candidate.")
	}
	var payload candidateapimodels.ApproveRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := candidate.Instance.Approve(middleware.GetActor(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to update candidate.")
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Upload candidate document
// @Tags Candidate documents
// @Param   id		path		string	true	"candidate id"
// @Param   file	formData	file	true	"document"
// @Success 201 {object} candidateapimodels.DocumentUploadResponse
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 503 {object} apimodels.Response
// @router /api/candidates/{id}/documents [post]
func (c *candidateApiController) uploadDocument(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to upload document.")
	}
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("File is required."))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("Unable to read file."))
	}
	defer file.Close()

	name, err := candidate.Instance.UploadDocument(ctx.UserContext(), middleware.GetActor(ctx), id,
		fileHeader.Filename, file, fileHeader.Size, fileHeader.Header.Get(fiber.HeaderContentType))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to upload document.")
	}
	return ctx.Status(fiber.StatusCreated).JSON(candidateapimodels.DocumentUploadResponse{Name: name})
}

// @Summary Download candidate document
// @Tags Candidate documents
// @Param   id		path	string	true	"candidate id"
// @Param   name	path	string	true	"document name"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 503 {object} apimodels.Response
// @router /api/candidates/{id}/documents/{name} [get]
func (c *candidateApiController) getDocument(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to read document.")
	}
	name := ctx.Params("name")
	body, err := candidate.Instance.GetDocument(ctx.UserContext(), middleware.GetActor(ctx), id, name)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to read document.")
	}
	ctx.Type(filepath.Ext(name))
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return ctx.Status(fiber.StatusOK).Send(body)
}

// @Summary Export candidates to Excel
// @Tags Candidates
// @Description Admin only.
// @Param   role	query	string	false	"legacy role"
// @Success 200
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/candidates/export [get]
func (c *candidateApiController) export(ctx *fiber.Ctx) error {
	list, err := candidate.Instance.List(candidateapimodels.ListFilter{Actor: middleware.GetActor(ctx)})
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to fetch candidates.")
	}
	data, err := xlsexport.Instance.ExportCandidateList(list)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to export candidates.")
	}
	fileName := fmt.Sprintf("candidates-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.Status(fiber.StatusOK).Send(data.Bytes())
}

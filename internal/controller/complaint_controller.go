package controller

import (
	"github.com/gofiber/fiber/v2"

	"college-chatbot-be/internal/constant"
	"college-chatbot-be/internal/dto"
	"college-chatbot-be/internal/pkg/serverutils"
	"college-chatbot-be/internal/service"
)

type IComplaintController interface {
	RegisterRoutes(r fiber.Router)
	Submit(ctx *fiber.Ctx) error
	GetCategories(ctx *fiber.Ctx) error
}

type complaintController struct {
	complaintService service.IComplaintService
}

func NewComplaintController(complaintService service.IComplaintService) IComplaintController {
	return &complaintController{
		complaintService: complaintService,
	}
}

func (c *complaintController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/complaint/v1")
	h.Get("categories", c.GetCategories)
	h.Post("", c.Submit)
}

func (c *complaintController) Submit(ctx *fiber.Ctx) error {
	var req dto.SubmitComplaintRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.complaintService.Submit(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success submit complaint", res))
}

// GetCategories exposes the fixed category set so the form can render its
// select box with the first entry preselected.
func (c *complaintController) GetCategories(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get categories", constant.ComplaintCategories))
}

package http

import (
	"net/http"

	"clinic-cms-backend/internal/delivery/http/handler"
	"clinic-cms-backend/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router                *mux.Router
	doctorHandler         *handler.DoctorHandler
	promoHandler          *handler.PromoHandler
	facilityPhotoHandler  *handler.FacilityPhotoHandler
	partnerHandler        *handler.PartnerHandler
	faqHandler            *handler.FAQHandler
	testimonialHandler    *handler.TestimonialHandler
	articleHandler        *handler.ArticleHandler
	polyClinicHandler     *handler.PolyClinicHandler
	clinicSettingsHandler *handler.ClinicSettingsHandler
	auditLogHandler       *handler.AuditLogHandler
	authMiddleware        *middleware.AuthMiddleware
	corsMiddleware        *middleware.CORSMiddleware
}

func NewRouter(
	doctorHandler *handler.DoctorHandler,
	promoHandler *handler.PromoHandler,
	facilityPhotoHandler *handler.FacilityPhotoHandler,
	partnerHandler *handler.PartnerHandler,
	faqHandler *handler.FAQHandler,
	testimonialHandler *handler.TestimonialHandler,
	articleHandler *handler.ArticleHandler,
	polyClinicHandler *handler.PolyClinicHandler,
	clinicSettingsHandler *handler.ClinicSettingsHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:                mux.NewRouter(),
		doctorHandler:         doctorHandler,
		promoHandler:          promoHandler,
		facilityPhotoHandler:  facilityPhotoHandler,
		partnerHandler:        partnerHandler,
		faqHandler:            faqHandler,
		testimonialHandler:    testimonialHandler,
		articleHandler:        articleHandler,
		polyClinicHandler:     polyClinicHandler,
		clinicSettingsHandler: clinicSettingsHandler,
		auditLogHandler:       auditLogHandler,
		authMiddleware:        authMiddleware,
		corsMiddleware:        corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Public routes: the site frontend reads published content without a session
	public := api.PathPrefix("/public").Subrouter()
	public.HandleFunc("/doctors", r.doctorHandler.GetAll).Methods(http.MethodGet)
	public.HandleFunc("/doctors/{id}", r.doctorHandler.Get).Methods(http.MethodGet)
	public.HandleFunc("/promos", r.promoHandler.GetAll).Methods(http.MethodGet)
	public.HandleFunc("/promos/{id}", r.promoHandler.Get).Methods(http.MethodGet)
	public.HandleFunc("/facility-photos", r.facilityPhotoHandler.GetAll).Methods(http.MethodGet)
	public.HandleFunc("/facility-photos/{id}", r.facilityPhotoHandler.Get).Methods(http.MethodGet)
	public.HandleFunc("/partners", r.partnerHandler.GetAll).Methods(http.MethodGet)
	public.HandleFunc("/partners/{id}", r.partnerHandler.Get).Methods(http.MethodGet)
	public.HandleFunc("/faqs", r.faqHandler.GetAll).Methods(http.MethodGet)
	public.HandleFunc("/faqs/{id}", r.faqHandler.Get).Methods(http.MethodGet)
	public.HandleFunc("/testimonials", r.testimonialHandler.GetAll).Methods(http.MethodGet)
	public.HandleFunc("/testimonials/{id}", r.testimonialHandler.Get).Methods(http.MethodGet)
	public.HandleFunc("/articles", r.articleHandler.GetAll).Methods(http.MethodGet)
	public.HandleFunc("/articles/slug/{slug}", r.articleHandler.GetBySlug).Methods(http.MethodGet)
	public.HandleFunc("/articles/{id}", r.articleHandler.Get).Methods(http.MethodGet)
	public.HandleFunc("/polyclinics", r.polyClinicHandler.GetAll).Methods(http.MethodGet)
	public.HandleFunc("/polyclinics/{id}", r.polyClinicHandler.Get).Methods(http.MethodGet)

	// Admin routes (protected)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)

	admin.HandleFunc("/doctors", r.doctorHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/doctors", r.doctorHandler.GetAll).Methods(http.MethodGet)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.Get).Methods(http.MethodGet)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.Delete).Methods(http.MethodDelete)

	admin.HandleFunc("/promos", r.promoHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/promos", r.promoHandler.GetAll).Methods(http.MethodGet)
	admin.HandleFunc("/promos/{id}", r.promoHandler.Get).Methods(http.MethodGet)
	admin.HandleFunc("/promos/{id}", r.promoHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/promos/{id}", r.promoHandler.Delete).Methods(http.MethodDelete)

	admin.HandleFunc("/facility-photos", r.facilityPhotoHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/facility-photos", r.facilityPhotoHandler.GetAll).Methods(http.MethodGet)
	admin.HandleFunc("/facility-photos/{id}", r.facilityPhotoHandler.Get).Methods(http.MethodGet)
	admin.HandleFunc("/facility-photos/{id}", r.facilityPhotoHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/facility-photos/{id}", r.facilityPhotoHandler.Delete).Methods(http.MethodDelete)

	admin.HandleFunc("/partners", r.partnerHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/partners", r.partnerHandler.GetAll).Methods(http.MethodGet)
	admin.HandleFunc("/partners/{id}", r.partnerHandler.Get).Methods(http.MethodGet)
	admin.HandleFunc("/partners/{id}", r.partnerHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/partners/{id}", r.partnerHandler.Delete).Methods(http.MethodDelete)

	admin.HandleFunc("/faqs", r.faqHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/faqs", r.faqHandler.GetAll).Methods(http.MethodGet)
	admin.HandleFunc("/faqs/{id}", r.faqHandler.Get).Methods(http.MethodGet)
	admin.HandleFunc("/faqs/{id}", r.faqHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/faqs/{id}", r.faqHandler.Delete).Methods(http.MethodDelete)

	admin.HandleFunc("/testimonials", r.testimonialHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/testimonials", r.testimonialHandler.GetAll).Methods(http.MethodGet)
	admin.HandleFunc("/testimonials/{id}", r.testimonialHandler.Get).Methods(http.MethodGet)
	admin.HandleFunc("/testimonials/{id}", r.testimonialHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/testimonials/{id}", r.testimonialHandler.Delete).Methods(http.MethodDelete)

	admin.HandleFunc("/articles", r.articleHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/articles", r.articleHandler.GetAll).Methods(http.MethodGet)
	admin.HandleFunc("/articles/{id}", r.articleHandler.Get).Methods(http.MethodGet)
	admin.HandleFunc("/articles/{id}", r.articleHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/articles/{id}", r.articleHandler.Delete).Methods(http.MethodDelete)

	admin.HandleFunc("/polyclinics", r.polyClinicHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/polyclinics", r.polyClinicHandler.GetAll).Methods(http.MethodGet)
	admin.HandleFunc("/polyclinics/{id}", r.polyClinicHandler.Get).Methods(http.MethodGet)
	admin.HandleFunc("/polyclinics/{id}", r.polyClinicHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/polyclinics/{id}", r.polyClinicHandler.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/polyclinics/{id}/services", r.polyClinicHandler.AddService).Methods(http.MethodPost)
	admin.HandleFunc("/polyclinics/{id}/services/{service}", r.polyClinicHandler.RemoveService).Methods(http.MethodDelete)

	admin.HandleFunc("/clinic-settings", r.clinicSettingsHandler.Get).Methods(http.MethodGet)
	admin.HandleFunc("/clinic-settings", r.clinicSettingsHandler.Update).Methods(http.MethodPut)

	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAll).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}

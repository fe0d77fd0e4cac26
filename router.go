package main

import (
	"school-api/biz/adaptor"
	handler "school-api/biz/adaptor/controller"
	"school-api/biz/adaptor/controller/school"

	"github.com/cloudwego/hertz/pkg/app/server"
)

// customizeRegister registers customize routers.
func customizedRegister(r *server.Hertz) {
	r.GET("/ping", handler.Ping)

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/login", school.Login)
		auth.POST("/register", adaptor.Authentication(), school.Register)
	}

	// 以下路由均需要登录
	protected := api.Group("", adaptor.Authentication())
	{
		users := protected.Group("/users")
		{
			users.GET("", school.ListUsers)
			users.GET("/students", school.ListStudents)
			users.GET("/teachers", school.ListTeachers)
			users.GET("/coordinators", school.ListCoordinators)
			users.GET("/:id", school.GetUser)
			users.PUT("/:id", school.UpdateUser)
			users.DELETE("/:id", school.DeleteUser)
		}

		classes := protected.Group("/classes")
		{
			classes.POST("", school.CreateClass)
			classes.GET("", school.ListClasses)
			classes.GET("/:id", school.GetClass)
			classes.PUT("/:id", school.UpdateClass)
			classes.DELETE("/:id", school.DeleteClass)
			classes.GET("/:id/students", school.GetClassStudents)
			classes.POST("/:id/add-student", school.AddStudent)
			classes.DELETE("/:id/remove-student/:studentId", school.RemoveStudent)
			classes.POST("/:id/add-teacher", school.AddTeacher)
			classes.DELETE("/:id/remove-teacher/:teacherId", school.RemoveTeacher)
		}

		subjects := protected.Group("/subjects")
		{
			subjects.POST("", school.CreateSubject)
			subjects.GET("", school.ListSubjects)
			subjects.GET("/:id", school.GetSubject)
			subjects.PUT("/:id", school.UpdateSubject)
			subjects.DELETE("/:id", school.DeleteSubject)
		}

		grades := protected.Group("/grades")
		{
			grades.POST("", school.CreateGrade)
			grades.GET("", school.ListGrades)
			grades.GET("/:id", school.GetGrade)
			grades.PUT("/:id", school.UpdateGrade)
			grades.DELETE("/:id", school.DeleteGrade)
		}

		absences := protected.Group("/absences")
		{
			absences.POST("", school.CreateAbsence)
			absences.GET("", school.ListAbsences)
			absences.GET("/:id", school.GetAbsence)
			absences.PUT("/:id", school.UpdateAbsence)
			absences.DELETE("/:id", school.DeleteAbsence)
		}

		announcements := protected.Group("/announcements")
		{
			announcements.POST("", school.CreateAnnouncement)
			announcements.GET("", school.ListAnnouncements)
			announcements.GET("/:id", school.GetAnnouncement)
			announcements.PUT("/:id", school.UpdateAnnouncement)
			announcements.DELETE("/:id", school.DeleteAnnouncement)
		}

		notifications := protected.Group("/notifications")
		{
			notifications.POST("", school.CreateNotification)
			notifications.GET("", school.ListNotifications)
			notifications.GET("/:id", school.GetNotification)
			notifications.PUT("/:id", school.UpdateNotification)
			notifications.DELETE("/:id", school.DeleteNotification)
		}
	}
}

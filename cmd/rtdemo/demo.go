// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"math/rand"
	"path/filepath"

	"github.com/He-Is-HaZaRdOuS/raytrace/linalg"
	"github.com/He-Is-HaZaRdOuS/raytrace/render"
)

// run executes the demo sections in order and stops at the first failure.
func run(cfg Config, out io.Writer, logger *slog.Logger) error {
	linalg.SetLogger(logger)
	defer linalg.SetLogger(nil)

	logger.Debug("rtdemo start", "log_level", cfg.LogLevel.String())

	steps := []struct {
		name string
		fn   func() error
	}{
		{"vectors", func() error { return demoVectors(out) }},
		{"matrices", func() error { return demoMatrices(out) }},
		{"json vector", func() error { return demoJSONVector(out, cfg.VectorPath) }},
		{"json matrix", func() error { return demoJSONMatrix(out, cfg.MatrixPath) }},
		{"images", func() error { return demoImages(out, cfg) }},
	}
	for i, s := range steps {
		if i > 0 {
			fmt.Fprintln(out)
		}
		if err := s.fn(); err != nil {
			return fmt.Errorf("rtdemo: %s: %w", s.name, err)
		}
	}

	return nil
}

func demoVectors(out io.Writer) error {
	fmt.Fprint(out, "Vector3 and Vector4 tests:\n\n")

	vec3Empty := linalg.ZeroVector3()
	_ = linalg.Vector3FromInt(0)
	vec3_3f := linalg.NewVector3(3, 3, 3)
	_ = vec3Empty.Clone()
	_ = linalg.Vector3FromVector4(linalg.OriginVector4())

	vec4Origin := linalg.OriginVector4()
	_ = linalg.Vector4FromInt(0)
	_ = linalg.ZeroVector4()
	vec4_3f := linalg.PointVector4(3, 3, 3)
	vec4_4f := linalg.NewVector4(4, 4, 4, 4)
	_ = linalg.Vector4FromVector3(vec3_3f)
	_ = vec4Origin.Clone()

	fmt.Fprintf(out, "vec4_3f32: %v\n", vec4_3f)
	fmt.Fprintf(out, "vec4_4f32: %v\n", vec4_4f)
	fmt.Fprintf(out, "dot product of vec4_3f32 and vec4_4f32: %g\n", vec4_3f.Dot(vec4_4f))
	fmt.Fprintf(out, "cross product of vec4_3f32 and vec4_4f32: %v\n", vec4_3f.Cross(vec4_4f))

	fmt.Fprintf(out, "vec4_3f32 before normalization: %v magnitude %g\n", vec4_3f, vec4_3f.Magnitude())
	if err := vec4_3f.Normalize(); err != nil {
		return err
	}
	fmt.Fprintf(out, "vec4_3f32 after normalization: %v magnitude %g\n", vec4_3f, vec4_3f.Magnitude())

	return nil
}

func demoMatrices(out io.Writer) error {
	fmt.Fprint(out, "Matrix3 and Matrix4 tests:\n\n")

	vec3Empty := linalg.ZeroVector3()
	vec3Zero := linalg.Vector3FromInt(0)
	vec3_3f := linalg.NewVector3(3, 3, 3)

	vec4Origin := linalg.OriginVector4()
	vec4Zero := linalg.ZeroVector4()
	vec4_3f := linalg.PointVector4(3, 3, 3)
	vec4_4f := linalg.NewVector4(4, 4, 4, 4)

	mat3Identity := linalg.IdentityMatrix3()
	_ = linalg.ZeroMatrix3()
	_ = linalg.Matrix3FromInt(0)
	_ = mat3Identity.Clone()
	_ = linalg.NewMatrix3(1, 2, 3, 4, 5, 6, 7, 8, 9)
	mat3Cols := linalg.Matrix3FromColumns(vec3Empty, vec3Zero, vec3_3f)

	mat4Identity := linalg.IdentityMatrix4()
	mat4Zero := linalg.ZeroMatrix4()
	_ = linalg.Matrix4FromInt(0)
	_ = mat4Identity.Clone()
	mat4_16f := linalg.NewMatrix4(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16)
	mat4Rows := linalg.Matrix4FromRows(vec4Origin, vec4Zero, vec4_3f, vec4_4f)

	fmt.Fprintf(out, "mat3_3vec3:\n%v", mat3Cols)
	fmt.Fprintf(out, "mat4_identity:\n%v", mat4Identity)
	fmt.Fprintf(out, "mat4_zero:\n%v", mat4Zero)
	fmt.Fprintf(out, "mat4_16f32:\n%v", mat4_16f)
	fmt.Fprintf(out, "mat4_4vec4:\n%v", mat4Rows)

	fmt.Fprint(out, "\nTransformation builders:\n\n")
	mat4Scale := linalg.Scale(4, 4, 4)
	rotate3f, err := linalg.Rotate(1, 1, 1, 90)
	if err != nil {
		return err
	}
	rotateVec3, err := linalg.RotateAxis(vec3_3f, 90)
	if err != nil {
		return err
	}
	rotateVec4, err := linalg.RotateAxis4(vec4_4f, 90)
	if err != nil {
		return err
	}
	for _, m := range []struct {
		name string
		m    linalg.Matrix4
	}{
		{"mat4_translate", linalg.Translate(1, 2, 3)},
		{"mat4_scale", mat4Scale},
		{"mat4_rotatex", linalg.RotateX(90)},
		{"mat4_rotatey", linalg.RotateY(90)},
		{"mat4_rotatez", linalg.RotateZ(90)},
		{"mat4_rotate_3f32", rotate3f},
		{"mat4_rotate_vec3", rotateVec3},
		{"mat4_rotate_vec4", rotateVec4},
	} {
		fmt.Fprintf(out, "%s:\n%v", m.name, m.m)
	}

	fmt.Fprint(out, "\nMatrix4-Vector4 and Matrix4-Matrix4 multiplication:\n\n")
	fmt.Fprintf(out, "mat4_16f32 * vec4_4f32: %v\n", mat4_16f.MulVector4(vec4_4f))
	fmt.Fprintf(out, "mat4_16f32 * mat4_scale:\n%v", mat4_16f.Mul(mat4Scale))

	fmt.Fprint(out, "\nMatrix4 determinant:\n\n")
	det := linalg.NewMatrix4(
		4, 2, 5, 2,
		4, 2, 7, 2,
		3, 6, 1, 2,
		2, 14, 5, 6,
	)
	fmt.Fprintf(out, "mat4_16f32:\n%v", det)
	fmt.Fprintf(out, "det of mat4_16f32: %g\n", det.Determinant())

	return nil
}

func demoJSONVector(out io.Writer, path string) error {
	fmt.Fprintln(out, "Creating Vector4 from its JSON file:")
	v, err := linalg.LoadVector4(path)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, v)

	return nil
}

func demoJSONMatrix(out io.Writer, path string) error {
	fmt.Fprintln(out, "Creating Matrix4 from its JSON file:")
	m, err := linalg.LoadMatrix4(path)
	if err != nil {
		return err
	}
	fmt.Fprint(out, m)

	return nil
}

func demoImages(out io.Writer, cfg Config) error {
	if cfg.OutDir == "" {
		fmt.Fprintln(out, "Image generation skipped.")
		return nil
	}

	fmt.Fprintf(out, "Generating a %dx%d red-green gradient image (gradient.png)\n", cfg.Size, cfg.Size)
	c, err := render.NewCanvas(cfg.Size, cfg.Size)
	if err != nil {
		return err
	}
	r, err := render.NewRenderer(cfg.Size, cfg.Size)
	if err != nil {
		return err
	}
	if err = r.RenderTo(c); err != nil {
		return err
	}
	if cfg.Caption != "" {
		c.Caption(nil, 4, 16, cfg.Caption, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	if err = render.SavePNG(filepath.Join(cfg.OutDir, "gradient.png"), c.Image()); err != nil {
		return err
	}

	fmt.Fprintf(out, "Generating a %dx%d lit sphere image (sphere.png)\n", cfg.Size, cfg.Size)
	shade, err := render.SphereShade(linalg.NewVector3(-1, 1, 2),
		color.RGBA{R: 230, G: 120, B: 40, A: 255}, color.RGBA{A: 255})
	if err != nil {
		return err
	}
	sr, err := render.NewRenderer(cfg.Size, cfg.Size, render.WithFragment(shade))
	if err != nil {
		return err
	}
	sphere, err := sr.Render()
	if err != nil {
		return err
	}
	if err = render.SavePNG(filepath.Join(cfg.OutDir, "sphere.png"), sphere); err != nil {
		return err
	}

	if !cfg.Noise {
		return nil
	}
	fmt.Fprintf(out, "Generating a %dx%d red-blue gradient image with random green in 0-63 (fractal.png)\n", cfg.Size, cfg.Size)
	img, err := render.Noise(cfg.Size, cfg.Size, rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		return err
	}

	return render.SavePNG(filepath.Join(cfg.OutDir, "fractal.png"), img)
}

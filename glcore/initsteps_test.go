package glcore

import "testing"

func TestCreateBufferStepAllocatesAndUploads(t *testing.T) {
	d, drv := newTestDevice(FeatureProbe{})
	var buf Buffer
	d.RunInitSteps([]InitStep{
		&CreateBufferStep{Buf: &buf, Target: glArrayBuffer, Size: 64, Usage: 0x88E4},
	})
	if buf.Handle == 0 {
		t.Fatal("expected non-zero buffer handle")
	}
	if buf.Size != 64 || buf.Target != glArrayBuffer {
		t.Errorf("buffer record not populated: %+v", buf)
	}
	wantCalls := []string{
		"GenBuffer->1",
		"BindBuffer(target=0x8892,buf=1)",
		"BufferData(target=0x8892,size=64)",
	}
	assertCalls(t, drv.Calls, wantCalls)
}

func TestBufferSubDataStepReleasesPayload(t *testing.T) {
	d, drv := newTestDevice(FeatureProbe{})
	buf := Buffer{Handle: 7}
	data := []byte{1, 2, 3, 4}
	step := &BufferSubDataStep{Buf: &buf, Offset: 0, Data: data, DeleteData: true}
	d.RunInitSteps([]InitStep{step})
	if step.Data != nil {
		t.Error("expected Data to be released after upload")
	}
	assertCalls(t, drv.Calls, []string{
		"BindBuffer(target=0x8892,buf=7)",
		"BufferSubData(target=0x8892,offset=0,len=4)",
	})
}

func TestBufferSubDataStepKeepsPayloadWhenNotRequested(t *testing.T) {
	d, _ := newTestDevice(FeatureProbe{})
	buf := Buffer{Handle: 7}
	step := &BufferSubDataStep{Buf: &buf, Data: []byte{9}}
	d.RunInitSteps([]InitStep{step})
	if step.Data == nil {
		t.Error("expected Data to survive when DeleteData is false")
	}
}

func TestCreateShaderStepSuccessReleasesSource(t *testing.T) {
	d, drv := newTestDevice(FeatureProbe{})
	drv.compileOK = true
	var sh Shader
	step := &CreateShaderStep{Sh: &sh, Stage: StageVertex, Source: "void main(){}"}
	d.RunInitSteps([]InitStep{step})
	if step.Source != "" {
		t.Error("expected shader source to be released after compile")
	}
	if sh.Handle == 0 || !sh.Valid {
		t.Errorf("expected a valid compiled shader, got %+v", sh)
	}
}

func TestCreateShaderStepFailureDeletesHandle(t *testing.T) {
	d, drv := newTestDevice(FeatureProbe{})
	drv.compileOK = false
	drv.compileInfo = "syntax error"
	var sh Shader
	d.RunInitSteps([]InitStep{&CreateShaderStep{Sh: &sh, Stage: StageFragment, Source: "bad"}})
	if sh.Handle != 0 {
		t.Errorf("expected handle cleared on compile failure, got %d", sh.Handle)
	}
	found := false
	for _, c := range drv.Calls {
		if c == "DeleteShader(1)" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected DeleteShader call, got %v", drv.Calls)
	}
}

func TestCreateProgramStepPanicsOnZeroValidShaders(t *testing.T) {
	d, _ := newTestDevice(FeatureProbe{})
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for zero valid shaders")
		}
	}()
	var prog Program
	d.RunInitSteps([]InitStep{&CreateProgramStep{Prog: &prog, Shaders: []*Shader{{}, nil}}})
}

func TestCreateProgramStepResolvesUniforms(t *testing.T) {
	d, drv := newTestDevice(FeatureProbe{})
	drv.linkOK = true
	drv.uniformLocs["u_xform"] = 3
	vsh := Shader{Handle: 1, Stage: StageVertex, Valid: true}
	fsh := Shader{Handle: 2, Stage: StageFragment, Valid: true}
	var prog Program
	var xformLoc int32
	d.RunInitSteps([]InitStep{
		&CreateProgramStep{
			Prog:    &prog,
			Shaders: []*Shader{&vsh, &fsh},
			Queries: []UniformQuery{{Name: "u_xform", Dest: &xformLoc}},
		},
	})
	if !prog.Valid {
		t.Fatal("expected program to be valid after successful link")
	}
	if xformLoc != 3 || prog.UniformLocs["u_xform"] != 3 {
		t.Errorf("expected uniform location 3, got %d (map=%v)", xformLoc, prog.UniformLocs)
	}
}

func TestCreateProgramStepAbortsOnLinkFailure(t *testing.T) {
	d, drv := newTestDevice(FeatureProbe{})
	drv.linkOK = false
	drv.linkInfo = "link error"
	vsh := Shader{Handle: 1, Valid: true}
	var prog Program
	d.RunInitSteps([]InitStep{&CreateProgramStep{Prog: &prog, Shaders: []*Shader{&vsh}}})
	if prog.Valid {
		t.Error("expected program to remain invalid after link failure")
	}
}

func TestCreateInputLayoutStepBuildsMask(t *testing.T) {
	d, _ := newTestDevice(FeatureProbe{})
	var layout InputLayout
	d.RunInitSteps([]InitStep{
		&CreateInputLayoutStep{
			Layout: &layout,
			Entries: []AttribEntry{
				{Location: 0, Packing: 2, Type: 0x1406, Stride: 8},
				{Location: 2, Packing: 3, Type: 0x1406, Stride: 12},
			},
		},
	})
	const want = 1<<0 | 1<<2
	if layout.SemanticsMask != want {
		t.Errorf("SemanticsMask = 0x%X, want 0x%X", layout.SemanticsMask, want)
	}
}

func TestTextureImageStepReleasesPixelsAndSetsFilters(t *testing.T) {
	d, drv := newTestDevice(FeatureProbe{})
	tex := Texture{Handle: 5, Target: glTexture2D}
	step := &TextureImageStep{
		Tex: &tex, Width: 4, Height: 4, Format: glRGBA, Type: glUnsignedByte,
		Pixels: []byte{1, 2, 3, 4}, LinearFilter: false,
	}
	d.RunInitSteps([]InitStep{step})
	if step.Pixels != nil {
		t.Error("expected Pixels to be released after upload")
	}
	if tex.MinFilter != glNearest || tex.MagFilter != glNearest {
		t.Errorf("expected nearest filtering, got min=%d mag=%d", tex.MinFilter, tex.MagFilter)
	}
	_ = drv
}

func TestRunInitStepsPanicsOnNilStep(t *testing.T) {
	d, _ := newTestDevice(FeatureProbe{})
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for nil step")
		}
	}()
	d.RunInitSteps([]InitStep{nil})
}

func assertCalls(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("call count = %d, want %d\ngot:  %v\nwant: %v", len(got), len(want), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("call[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
